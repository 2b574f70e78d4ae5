// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/paddocklab/gridline/internal/cache"
	"github.com/paddocklab/gridline/internal/config"
	"github.com/paddocklab/gridline/internal/database"
	"github.com/paddocklab/gridline/internal/metrics"
	"github.com/paddocklab/gridline/internal/models"
)

// Handler holds the dependencies for all HTTP handlers.
type Handler struct {
	db      *database.DB
	cache   *cache.Cache
	catalog *models.Catalog
	cfg     *config.Config
}

// NewHandler creates a Handler.
func NewHandler(db *database.DB, c *cache.Cache, catalog *models.Catalog, cfg *config.Config) *Handler {
	return &Handler{db: db, cache: c, catalog: catalog, cfg: cfg}
}

// filterParams carries the parsed filter query parameters through
// validation.
type filterParams struct {
	Years     []int    `validate:"omitempty,dive,season"`
	Countries []string `validate:"omitempty,dive,country"`
}

// limitedParams is the cache key shape for endpoints taking a filter and
// a row limit.
type limitedParams struct {
	Filter database.StatsFilter `json:"filter"`
	Limit  int                  `json:"limit"`
}

// parseFilter extracts and validates the season/country filter from the
// query string. On validation failure it writes the error response and
// reports ok=false.
func (h *Handler) parseFilter(w http.ResponseWriter, r *http.Request) (database.StatsFilter, bool) {
	params := filterParams{
		Years:     parseCommaSeparatedInts(r.URL.Query().Get("seasons")),
		Countries: parseCommaSeparated(r.URL.Query().Get("countries")),
	}
	if apiErr := validateRequest(&params); apiErr != nil {
		respondJSON(w, http.StatusBadRequest, &models.APIResponse{
			Status:   "error",
			Metadata: models.Metadata{Timestamp: time.Now()},
			Error:    apiErr,
		})
		return database.StatsFilter{}, false
	}
	return database.StatsFilter{Years: params.Years, Countries: params.Countries}, true
}

// parseLimit extracts the limit parameter clamped to the configured
// bounds.
func (h *Handler) parseLimit(r *http.Request) int {
	limit := getIntParam(r, "limit", h.cfg.API.DefaultLimit)
	if limit < 1 {
		limit = h.cfg.API.DefaultLimit
	}
	if limit > h.cfg.API.MaxLimit {
		limit = h.cfg.API.MaxLimit
	}
	return limit
}

// requireDatasets rejects the request with DATASET_UNAVAILABLE when any
// of the named datasets failed to load.
func (h *Handler) requireDatasets(w http.ResponseWriter, datasets ...models.Dataset) bool {
	for _, d := range datasets {
		if !h.catalog.Available(d) {
			respondError(w, http.StatusNotFound, "DATASET_UNAVAILABLE",
				fmt.Sprintf("%s data is not available", d), nil)
			return false
		}
	}
	return true
}

// respondCached serves the endpoint from the TTL cache when possible and
// stores fresh results on miss.
func (h *Handler) respondCached(w http.ResponseWriter, r *http.Request, endpoint string, params interface{}, fetch func(ctx context.Context) (interface{}, error)) {
	key := cache.Key(endpoint, params)
	if data, ok := h.cache.Get(key); ok {
		metrics.CacheHits.Inc()
		respondJSON(w, http.StatusOK, &models.APIResponse{
			Status: "success",
			Data:   data,
			Metadata: models.Metadata{
				Timestamp: time.Now(),
				Cached:    true,
			},
		})
		return
	}

	metrics.CacheMisses.Inc()
	start := time.Now()
	data, err := fetch(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Query failed", err)
		return
	}
	h.cache.Set(key, data)

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}

// handleHealth reports liveness and database reachability.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, "DATABASE_ERROR", "Database unreachable", err)
		return
	}
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status:   "success",
		Data:     map[string]string{"status": "ok"},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// handleStatus reports per-dataset load outcomes and cache statistics.
func (h *Handler) handleStatus(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"datasets": h.catalog.Statuses(),
			"cache":    h.cache.Stats(),
		},
		Metadata: models.Metadata{Timestamp: time.Now()},
	})
}

// handleFilters returns the selectable seasons and countries.
func (h *Handler) handleFilters(w http.ResponseWriter, r *http.Request) {
	h.respondCached(w, r, "filters", nil, func(ctx context.Context) (interface{}, error) {
		seasons, err := h.db.GetSeasons(ctx)
		if err != nil {
			return nil, err
		}
		countries, err := h.db.GetCountries(ctx)
		if err != nil {
			return nil, err
		}
		return &models.FilterOptions{Seasons: seasons, Countries: countries}, nil
	})
}

// handleOverview returns the headline counts.
func (h *Handler) handleOverview(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}
	h.respondCached(w, r, "overview", filter, func(ctx context.Context) (interface{}, error) {
		return h.db.GetOverview(ctx, filter, h.catalog)
	})
}
