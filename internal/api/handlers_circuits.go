// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package api

import (
	"context"
	"net/http"
)

func (h *Handler) handleCircuitMap(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}
	h.respondCached(w, r, "circuits/map", filter, func(ctx context.Context) (interface{}, error) {
		return h.db.GetCircuitMap(ctx, filter)
	})
}

func (h *Handler) handleTopCircuits(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}
	limit := h.parseLimit(r)
	h.respondCached(w, r, "circuits/top", limitedParams{filter, limit}, func(ctx context.Context) (interface{}, error) {
		return h.db.GetTopCircuits(ctx, filter, limit)
	})
}

func (h *Handler) handleRacesByCountry(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}
	limit := h.parseLimit(r)
	h.respondCached(w, r, "circuits/countries", limitedParams{filter, limit}, func(ctx context.Context) (interface{}, error) {
		return h.db.GetRacesByCountry(ctx, filter, limit)
	})
}
