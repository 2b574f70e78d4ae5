// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package api

import (
	"context"
	"net/http"

	"github.com/paddocklab/gridline/internal/database"
	"github.com/paddocklab/gridline/internal/models"
)

func (h *Handler) handlePitStopSummary(w http.ResponseWriter, r *http.Request) {
	if !h.requireDatasets(w, models.DatasetPitStops) {
		return
	}
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}
	h.respondCached(w, r, "pitstops/summary", filter, func(ctx context.Context) (interface{}, error) {
		return h.db.GetPitStopSummary(ctx, filter)
	})
}

func (h *Handler) handlePitStopDistribution(w http.ResponseWriter, r *http.Request) {
	if !h.requireDatasets(w, models.DatasetPitStops) {
		return
	}
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}
	binWidth := getFloatParam(r, "bin_width", 0.5)
	h.respondCached(w, r, "pitstops/distribution", struct {
		Filter   database.StatsFilter `json:"filter"`
		BinWidth float64              `json:"bin_width"`
	}{filter, binWidth}, func(ctx context.Context) (interface{}, error) {
		return h.db.GetPitStopDistribution(ctx, filter, binWidth)
	})
}

func (h *Handler) handleStopNumbers(w http.ResponseWriter, r *http.Request) {
	if !h.requireDatasets(w, models.DatasetPitStops) {
		return
	}
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}
	h.respondCached(w, r, "pitstops/stops", filter, func(ctx context.Context) (interface{}, error) {
		return h.db.GetStopNumberCounts(ctx, filter)
	})
}

func (h *Handler) handleFastestPitStops(w http.ResponseWriter, r *http.Request) {
	if !h.requireDatasets(w, models.DatasetPitStops) {
		return
	}
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}
	limit := h.parseLimit(r)
	h.respondCached(w, r, "pitstops/fastest", limitedParams{filter, limit}, func(ctx context.Context) (interface{}, error) {
		return h.db.GetFastestPitStops(ctx, filter, limit)
	})
}
