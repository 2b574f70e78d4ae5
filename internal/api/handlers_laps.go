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

func (h *Handler) handleLapSummary(w http.ResponseWriter, r *http.Request) {
	if !h.requireDatasets(w, models.DatasetLapTimes) {
		return
	}
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}
	h.respondCached(w, r, "laps/summary", filter, func(ctx context.Context) (interface{}, error) {
		return h.db.GetLapSummary(ctx, filter)
	})
}

func (h *Handler) handleLapDistribution(w http.ResponseWriter, r *http.Request) {
	if !h.requireDatasets(w, models.DatasetLapTimes) {
		return
	}
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}
	binWidth := getFloatParam(r, "bin_width", 2.0)
	h.respondCached(w, r, "laps/distribution", struct {
		Filter   database.StatsFilter `json:"filter"`
		BinWidth float64              `json:"bin_width"`
	}{filter, binWidth}, func(ctx context.Context) (interface{}, error) {
		return h.db.GetLapTimeDistribution(ctx, filter, binWidth)
	})
}

func (h *Handler) handleLapEvolution(w http.ResponseWriter, r *http.Request) {
	if !h.requireDatasets(w, models.DatasetLapTimes) {
		return
	}
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}
	h.respondCached(w, r, "laps/evolution", filter, func(ctx context.Context) (interface{}, error) {
		return h.db.GetLapTimeEvolution(ctx, filter)
	})
}

func (h *Handler) handleFastestLaps(w http.ResponseWriter, r *http.Request) {
	if !h.requireDatasets(w, models.DatasetLapTimes) {
		return
	}
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}
	limit := h.parseLimit(r)
	h.respondCached(w, r, "laps/fastest", limitedParams{filter, limit}, func(ctx context.Context) (interface{}, error) {
		return h.db.GetFastestLaps(ctx, filter, limit)
	})
}
