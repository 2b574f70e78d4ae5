// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus instrumentation for:
// - DuckDB query performance
// - CSV ingest volume and duration
// - API endpoint latency and throughput
// - Analytics cache efficiency

var (
	// Database metrics

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gridline_query_duration_seconds",
			Help:    "Duration of DuckDB analytics queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridline_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation"},
	)

	// Ingest metrics

	IngestRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "gridline_ingest_rows",
			Help: "Rows loaded per dataset at startup",
		},
		[]string{"dataset"},
	)

	IngestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gridline_ingest_duration_seconds",
			Help:    "Time spent loading each dataset from CSV",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"dataset"},
	)

	IngestRowsDropped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridline_ingest_rows_dropped_total",
			Help: "Rows dropped during ingest (missing keys, coordinates, durations)",
		},
		[]string{"dataset", "reason"},
	)

	// API metrics

	APIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gridline_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "path", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gridline_api_request_duration_seconds",
			Help:    "API request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gridline_api_active_requests",
			Help: "Number of in-flight API requests",
		},
	)

	// Cache metrics

	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gridline_cache_hits_total",
			Help: "Analytics cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gridline_cache_misses_total",
			Help: "Analytics cache misses",
		},
	)
)

// RecordQuery observes one analytics query execution.
func RecordQuery(operation string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

// RecordIngest observes one dataset load.
func RecordIngest(dataset string, rows int64, duration time.Duration) {
	IngestRows.WithLabelValues(dataset).Set(float64(rows))
	IngestDuration.WithLabelValues(dataset).Observe(duration.Seconds())
}

// RecordAPIRequest observes one completed HTTP request.
func RecordAPIRequest(method, path, status string, duration time.Duration) {
	APIRequests.WithLabelValues(method, path, status).Inc()
	APIRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(start bool) {
	if start {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
