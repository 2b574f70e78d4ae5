// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package database

import (
	"context"
	"database/sql"
	"time"
)

// GetSeasons returns all distinct seasons present in the races table,
// newest first. Drives the season multi-select in the dashboard sidebar.
func (db *DB) GetSeasons(ctx context.Context) (_ []int, err error) {
	defer db.observe("GetSeasons", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `
		SELECT DISTINCT year
		FROM races
		WHERE year IS NOT NULL
		ORDER BY year DESC`

	return queryAndScan(ctx, db.conn, query, nil, func(rows *sql.Rows) (int, error) {
		var year int
		err := rows.Scan(&year)
		return year, err
	})
}

// GetCountries returns all distinct circuit countries, alphabetical.
func (db *DB) GetCountries(ctx context.Context) (_ []string, err error) {
	defer db.observe("GetCountries", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	query := `
		SELECT DISTINCT country
		FROM circuits
		WHERE country IS NOT NULL AND country != ''
		ORDER BY country ASC`

	return queryAndScan(ctx, db.conn, query, nil, func(rows *sql.Rows) (string, error) {
		var country string
		err := rows.Scan(&country)
		return country, err
	})
}
