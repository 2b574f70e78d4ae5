// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package ingest

import (
	"strconv"
	"strings"
	"time"
)

// NormalizeHeader canonicalizes a CSV column header: strip a UTF-8 BOM,
// trim surrounding whitespace, lowercase. The function is idempotent, so
// already-clean headers pass through unchanged.
func NormalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.ToLower(strings.TrimSpace(h))
}

func normalizeHeaders(headers []string) []string {
	out := make([]string, len(headers))
	for i, h := range headers {
		out[i] = NormalizeHeader(h)
	}
	return out
}

// dateLayouts are the date formats seen in race exports.
var dateLayouts = []string{"2006-01-02", "02/01/2006"}

// parseFloat coerces a cell to a float. Empty cells, `\N` markers and
// anything unparseable report ok=false, matching a coercing numeric
// conversion that yields NULL instead of failing the row.
func parseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseInt coerces a cell to an integer, accepting float-formatted
// values ("3.0") the way a numeric coercion would.
func parseInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f), true
	}
	return 0, false
}

// parseDate coerces a cell to a date, trying each known layout.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// nullableFloat converts a parse result to a bind argument, nil for NULL.
func nullableFloat(v float64, ok bool) interface{} {
	if !ok {
		return nil
	}
	return v
}

func nullableInt(v int64, ok bool) interface{} {
	if !ok {
		return nil
	}
	return v
}

func nullableString(s string) interface{} {
	s = strings.TrimSpace(s)
	if s == "" || s == `\N` {
		return nil
	}
	return s
}

func nullableDate(t time.Time, ok bool) interface{} {
	if !ok {
		return nil
	}
	return t
}
