// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/paddocklab/gridline/internal/charts"
	"github.com/paddocklab/gridline/internal/database"
	"github.com/paddocklab/gridline/internal/logging"
	"github.com/paddocklab/gridline/internal/models"
)

// Dashboard section names accepted by /dashboard/{section}.
const (
	sectionCircuits    = "circuits"
	sectionPitStops    = "pitstops"
	sectionPerformance = "performance"
	sectionQualifying  = "qualifying"
	sectionLaps        = "laps"
)

// sectionDatasets maps each dashboard section to the dataset that must be
// loaded for it to render. Circuits has no entry because circuits and races
// are required for startup.
var sectionDatasets = map[string]models.Dataset{
	sectionPitStops:    models.DatasetPitStops,
	sectionPerformance: models.DatasetResults,
	sectionQualifying:  models.DatasetQualifying,
	sectionLaps:        models.DatasetLapTimes,
}

// handleDashboard renders the full HTML dashboard. Sections backed by
// datasets that failed to load are omitted rather than rendered empty.
func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}

	var data charts.DashboardData
	for _, section := range []string{sectionCircuits, sectionPitStops, sectionPerformance, sectionQualifying, sectionLaps} {
		if ds, gated := sectionDatasets[section]; gated && !h.catalog.Available(ds) {
			continue
		}
		if err := h.buildSection(r.Context(), section, filter, &data); err != nil {
			respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Query failed", err)
			return
		}
	}

	h.renderDashboard(w, data)
}

// handleDashboardSection renders a single dashboard section as its own
// page.
func (h *Handler) handleDashboardSection(w http.ResponseWriter, r *http.Request) {
	section := chi.URLParam(r, "section")

	switch section {
	case sectionCircuits, sectionPitStops, sectionPerformance, sectionQualifying, sectionLaps:
	default:
		respondError(w, http.StatusNotFound, "NOT_FOUND", "Unknown dashboard section: "+sanitizeLogValue(section), nil)
		return
	}

	if ds, gated := sectionDatasets[section]; gated {
		datasets := []models.Dataset{ds}
		if section == sectionQualifying {
			datasets = append(datasets, models.DatasetResults)
		}
		if !h.requireDatasets(w, datasets...) {
			return
		}
	}

	filter, ok := h.parseFilter(w, r)
	if !ok {
		return
	}

	var data charts.DashboardData
	if err := h.buildSection(r.Context(), section, filter, &data); err != nil {
		respondError(w, http.StatusInternalServerError, "DATABASE_ERROR", "Query failed", err)
		return
	}

	h.renderDashboard(w, data)
}

// buildSection runs the queries backing one dashboard section and fills
// the matching DashboardData fields. Callers are responsible for checking
// dataset availability first.
func (h *Handler) buildSection(ctx context.Context, section string, filter database.StatsFilter, data *charts.DashboardData) error {
	var err error

	switch section {
	case sectionCircuits:
		if data.CircuitMap, err = h.db.GetCircuitMap(ctx, filter); err != nil {
			return err
		}
		if data.TopCircuits, err = h.db.GetTopCircuits(ctx, filter, h.cfg.API.DefaultLimit); err != nil {
			return err
		}
		data.RacesByCountry, err = h.db.GetRacesByCountry(ctx, filter, h.cfg.API.DefaultLimit)

	case sectionPitStops:
		if data.PitStopBins, err = h.db.GetPitStopDistribution(ctx, filter, 0.5); err != nil {
			return err
		}
		data.StopNumbers, err = h.db.GetStopNumberCounts(ctx, filter)

	case sectionPerformance:
		if data.Constructors, err = h.db.GetTopConstructors(ctx, filter, h.cfg.API.DefaultLimit); err != nil {
			return err
		}
		data.Positions, err = h.db.GetPositionDistribution(ctx, filter, 10)

	case sectionQualifying:
		if !h.catalog.Available(models.DatasetResults) {
			return nil
		}
		if data.PositionChanges, err = h.db.GetPositionChangeDistribution(ctx, filter); err != nil {
			return err
		}
		data.GridConversion, err = h.db.GetGridConversion(ctx, filter, 2000)

	case sectionLaps:
		if data.LapBins, err = h.db.GetLapTimeDistribution(ctx, filter, 2.0); err != nil {
			return err
		}
		data.LapEvolution, err = h.db.GetLapTimeEvolution(ctx, filter)
	}

	return err
}

func (h *Handler) renderDashboard(w http.ResponseWriter, data charts.DashboardData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := charts.RenderDashboard(w, data); err != nil {
		logging.Error().Err(err).Msg("Failed to render dashboard")
	}
}
