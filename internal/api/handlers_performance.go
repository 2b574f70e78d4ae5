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

func (h *Handler) handlePerformanceSummary(w http.ResponseWriter, r *http.Request) {
	if !h.requireDatasets(w, models.DatasetResults) {
		return
	}
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}
	h.respondCached(w, r, "performance/summary", filter, func(ctx context.Context) (interface{}, error) {
		return h.db.GetPerformanceSummary(ctx, filter)
	})
}

func (h *Handler) handleTopConstructors(w http.ResponseWriter, r *http.Request) {
	if !h.requireDatasets(w, models.DatasetResults) {
		return
	}
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}
	limit := h.parseLimit(r)
	h.respondCached(w, r, "performance/constructors", limitedParams{filter, limit}, func(ctx context.Context) (interface{}, error) {
		return h.db.GetTopConstructors(ctx, filter, limit)
	})
}

func (h *Handler) handlePositionDistribution(w http.ResponseWriter, r *http.Request) {
	if !h.requireDatasets(w, models.DatasetResults) {
		return
	}
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}
	maxPosition := getIntParam(r, "max_position", 10)
	h.respondCached(w, r, "performance/positions", struct {
		Filter      database.StatsFilter `json:"filter"`
		MaxPosition int                  `json:"max_position"`
	}{filter, maxPosition}, func(ctx context.Context) (interface{}, error) {
		return h.db.GetPositionDistribution(ctx, filter, maxPosition)
	})
}
