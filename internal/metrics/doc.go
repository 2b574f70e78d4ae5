// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

// Package metrics defines the Prometheus instrumentation for Gridline:
// query latency, ingest volume, API throughput, and cache efficiency.
// All metrics are registered via promauto and exposed at /metrics.
package metrics
