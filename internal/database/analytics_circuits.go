// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/paddocklab/gridline/internal/models"
)

// GetCircuitMap returns the circuits for the world map, each with the
// number of races held there under the active filter. The season filter
// lives inside the LEFT JOIN condition so circuits with no matching races
// still appear as zero-count markers instead of vanishing from the map.
func (db *DB) GetCircuitMap(ctx context.Context, filter StatsFilter) (_ []models.CircuitMapPoint, err error) {
	defer db.observe("GetCircuitMap", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	join := "LEFT JOIN races r ON r.circuit_id = c.circuit_id"
	args := make([]interface{}, 0, len(filter.Years)+len(filter.Countries))
	if len(filter.Years) > 0 {
		join += fmt.Sprintf(" AND r.year IN (%s)", inPlaceholders(len(filter.Years)))
		for _, y := range filter.Years {
			args = append(args, y)
		}
	}

	query := `
		SELECT c.circuit_id, c.name, COALESCE(c.location, ''), c.country, c.lat, c.lng,
		       COUNT(r.race_id) AS race_count
		FROM circuits c
		` + join + `
		WHERE 1=1`
	if len(filter.Countries) > 0 {
		query += fmt.Sprintf(" AND c.country IN (%s)", inPlaceholders(len(filter.Countries)))
		for _, country := range filter.Countries {
			args = append(args, country)
		}
	}
	query += `
		GROUP BY c.circuit_id, c.name, c.location, c.country, c.lat, c.lng
		ORDER BY race_count DESC, c.name ASC`

	return queryAndScan(ctx, db.conn, query, args, func(rows *sql.Rows) (models.CircuitMapPoint, error) {
		var p models.CircuitMapPoint
		err := rows.Scan(&p.CircuitID, &p.Name, &p.Location, &p.Country, &p.Lat, &p.Lng, &p.RaceCount)
		return p, err
	})
}

// GetTopCircuits returns the circuits that hosted the most races under
// the filter, busiest first. Ties break alphabetically so the ranking is
// stable across runs.
func (db *DB) GetTopCircuits(ctx context.Context, filter StatsFilter, limit int) (_ []models.CircuitRaceCount, err error) {
	defer db.observe("GetTopCircuits", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	qb := newQueryBuilder(`
		SELECT c.name, COUNT(*) AS races
		FROM races r
		JOIN circuits c ON r.circuit_id = c.circuit_id
		WHERE 1=1`)
	qb.addStandardFilters(filter)
	qb.addArgs(limit)
	query, args := qb.build(`
		GROUP BY c.name
		ORDER BY races DESC, c.name ASC
		LIMIT ?`)

	return queryAndScan(ctx, db.conn, query, args, func(rows *sql.Rows) (models.CircuitRaceCount, error) {
		var row models.CircuitRaceCount
		err := rows.Scan(&row.Circuit, &row.Races)
		return row, err
	})
}

// GetRacesByCountry returns race counts grouped by circuit country.
func (db *DB) GetRacesByCountry(ctx context.Context, filter StatsFilter, limit int) (_ []models.CountryRaceCount, err error) {
	defer db.observe("GetRacesByCountry", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	qb := newQueryBuilder(`
		SELECT c.country, COUNT(*) AS races
		FROM races r
		JOIN circuits c ON r.circuit_id = c.circuit_id
		WHERE 1=1`)
	qb.addStandardFilters(filter)

	suffix := `
		GROUP BY c.country
		ORDER BY races DESC, c.country ASC`
	if limit > 0 {
		suffix += `
		LIMIT ?`
		qb.addArgs(limit)
	}
	query, args := qb.build(suffix)

	return queryAndScan(ctx, db.conn, query, args, func(rows *sql.Rows) (models.CountryRaceCount, error) {
		var row models.CountryRaceCount
		err := rows.Scan(&row.Country, &row.Races)
		return row, err
	})
}
