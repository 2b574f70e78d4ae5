// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package models

import (
	"time"
)

// APIResponse is the standardized wrapper used by all HTTP endpoints.
// It provides a consistent structure for both successful and error responses,
// with metadata for observability and caching.
//
// Status field values:
//   - "success": request completed, see Data
//   - "error": request failed, see Error
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"seasons": [2023, 2022], "countries": ["Italy", "Monaco"]},
//	  "metadata": {"timestamp": "2026-08-30T12:00:00Z", "query_time_ms": 3}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
//
// QueryTimeMS is the database execution time in milliseconds; it is 0 and
// Cached is true when the response was served from the in-memory TTL cache.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError represents an error response with structured details.
//
// Common error codes:
//   - VALIDATION_ERROR: invalid input parameters
//   - DATABASE_ERROR: query execution failure
//   - DATASET_UNAVAILABLE: the optional source file backing this endpoint
//     failed to load or was not present
//   - NOT_FOUND: resource doesn't exist
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
