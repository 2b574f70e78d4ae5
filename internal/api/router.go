// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/paddocklab/gridline/internal/middleware"
)

// NewRouter builds the chi router with the full middleware chain and
// every route.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.LimitByIP(120, time.Minute))
		r.Use(middleware.PrometheusMetrics)

		r.Get("/health", h.handleHealth)
		r.Get("/status", h.handleStatus)
		r.Get("/filters", h.handleFilters)
		r.Get("/overview", h.handleOverview)

		r.Route("/circuits", func(r chi.Router) {
			r.Get("/map", h.handleCircuitMap)
			r.Get("/top", h.handleTopCircuits)
			r.Get("/countries", h.handleRacesByCountry)
		})

		r.Route("/pitstops", func(r chi.Router) {
			r.Get("/summary", h.handlePitStopSummary)
			r.Get("/distribution", h.handlePitStopDistribution)
			r.Get("/stops", h.handleStopNumbers)
			r.Get("/fastest", h.handleFastestPitStops)
		})

		r.Route("/performance", func(r chi.Router) {
			r.Get("/summary", h.handlePerformanceSummary)
			r.Get("/constructors", h.handleTopConstructors)
			r.Get("/positions", h.handlePositionDistribution)
		})

		r.Route("/qualifying", func(r chi.Router) {
			r.Get("/summary", h.handleQualifyingSummary)
			r.Get("/changes", h.handlePositionChanges)
			r.Get("/conversion", h.handleGridConversion)
			r.Get("/gainers", h.handleTopGainers)
		})

		r.Route("/laps", func(r chi.Router) {
			r.Get("/summary", h.handleLapSummary)
			r.Get("/distribution", h.handleLapDistribution)
			r.Get("/evolution", h.handleLapEvolution)
			r.Get("/fastest", h.handleFastestLaps)
		})
	})

	r.Get("/dashboard", h.handleDashboard)
	r.Get("/dashboard/{section}", h.handleDashboardSection)
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	})
	r.Handle("/metrics", promhttp.Handler())

	return r
}
