// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package api

import (
	"context"
	"net/http"

	"github.com/paddocklab/gridline/internal/models"
)

// Every qualifying view joins against race results, so both datasets
// have to be present.
func (h *Handler) handleQualifyingSummary(w http.ResponseWriter, r *http.Request) {
	if !h.requireDatasets(w, models.DatasetQualifying, models.DatasetResults) {
		return
	}
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}
	h.respondCached(w, r, "qualifying/summary", filter, func(ctx context.Context) (interface{}, error) {
		return h.db.GetQualifyingSummary(ctx, filter)
	})
}

func (h *Handler) handlePositionChanges(w http.ResponseWriter, r *http.Request) {
	if !h.requireDatasets(w, models.DatasetQualifying, models.DatasetResults) {
		return
	}
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}
	h.respondCached(w, r, "qualifying/changes", filter, func(ctx context.Context) (interface{}, error) {
		return h.db.GetPositionChangeDistribution(ctx, filter)
	})
}

func (h *Handler) handleGridConversion(w http.ResponseWriter, r *http.Request) {
	if !h.requireDatasets(w, models.DatasetQualifying, models.DatasetResults) {
		return
	}
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}
	sampleLimit := getIntParam(r, "sample", 2000)
	h.respondCached(w, r, "qualifying/conversion", limitedParams{filter, sampleLimit}, func(ctx context.Context) (interface{}, error) {
		return h.db.GetGridConversion(ctx, filter, sampleLimit)
	})
}

func (h *Handler) handleTopGainers(w http.ResponseWriter, r *http.Request) {
	if !h.requireDatasets(w, models.DatasetQualifying, models.DatasetResults) {
		return
	}
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}
	limit := h.parseLimit(r)
	h.respondCached(w, r, "qualifying/gainers", limitedParams{filter, limit}, func(ctx context.Context) (interface{}, error) {
		return h.db.GetTopGainers(ctx, filter, limit)
	})
}
