// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/paddocklab/gridline/internal/models"
)

// Lap time window in seconds. Anything outside is a formation lap, a
// safety car crawl or a stint spent in the garage, not a racing lap.
const (
	lapWindowMin = 30.0
	lapWindowMax = 150.0
)

// lapSeconds converts the stored milliseconds to seconds in SQL. The
// cast keeps the expression DOUBLE; a bare decimal literal would make it
// DECIMAL, which does not scan into float64.
const lapSeconds = "(CAST(l.milliseconds AS DOUBLE) / 1000.0)"

// GetLapSummary returns the lap time headline metrics under the filter.
func (db *DB) GetLapSummary(ctx context.Context, filter StatsFilter) (_ *models.LapSummary, err error) {
	defer db.observe("GetLapSummary", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	qb := newQueryBuilder(`
		SELECT COUNT(*),
		       COALESCE(MIN(` + lapSeconds + `), 0),
		       COALESCE(AVG(` + lapSeconds + `), 0),
		       COUNT(DISTINCT l.driver_id)
		FROM lap_times l
		JOIN races r ON l.race_id = r.race_id
		JOIN circuits c ON r.circuit_id = c.circuit_id
		WHERE ` + lapSeconds + ` >= ? AND ` + lapSeconds + ` <= ?`)
	qb.addArgs(lapWindowMin, lapWindowMax)
	qb.addStandardFilters(filter)
	query, args := qb.build("")

	summary := &models.LapSummary{}
	if err := db.conn.QueryRowContext(ctx, query, args...).Scan(
		&summary.TotalLaps, &summary.FastestSeconds, &summary.AvgSeconds, &summary.Drivers); err != nil {
		return nil, err
	}

	return summary, nil
}

// GetLapTimeDistribution returns a histogram of lap times in seconds.
func (db *DB) GetLapTimeDistribution(ctx context.Context, filter StatsFilter, binWidth float64) (_ []models.LapTimeBin, err error) {
	defer db.observe("GetLapTimeDistribution", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if binWidth <= 0 {
		binWidth = 2.0
	}

	qb := newQueryBuilder(`
		SELECT FLOOR(`+lapSeconds+` / ?) * ? AS bin, COUNT(*) AS cnt
		FROM lap_times l
		JOIN races r ON l.race_id = r.race_id
		JOIN circuits c ON r.circuit_id = c.circuit_id
		WHERE `+lapSeconds+` >= ? AND `+lapSeconds+` <= ?`)
	qb.addArgs(binWidth, binWidth, lapWindowMin, lapWindowMax)
	qb.addStandardFilters(filter)
	query, args := qb.build(`
		GROUP BY bin
		ORDER BY bin ASC`)

	return queryAndScan(ctx, db.conn, query, args, func(rows *sql.Rows) (models.LapTimeBin, error) {
		var b models.LapTimeBin
		err := rows.Scan(&b.Bin, &b.Count)
		return b, err
	})
}

// GetLapTimeEvolution returns the median lap time per lap number, showing
// how the field speeds up as fuel burns off. Median rather than mean so a
// single car limping home does not bend the curve.
func (db *DB) GetLapTimeEvolution(ctx context.Context, filter StatsFilter) (_ []models.LapPoint, err error) {
	defer db.observe("GetLapTimeEvolution", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	qb := newQueryBuilder(`
		SELECT l.lap, MEDIAN(` + lapSeconds + `) AS sec
		FROM lap_times l
		JOIN races r ON l.race_id = r.race_id
		JOIN circuits c ON r.circuit_id = c.circuit_id
		WHERE l.lap IS NOT NULL
		  AND ` + lapSeconds + ` >= ? AND ` + lapSeconds + ` <= ?`)
	qb.addArgs(lapWindowMin, lapWindowMax)
	qb.addStandardFilters(filter)
	query, args := qb.build(`
		GROUP BY l.lap
		ORDER BY l.lap ASC`)

	return queryAndScan(ctx, db.conn, query, args, func(rows *sql.Rows) (models.LapPoint, error) {
		var p models.LapPoint
		err := rows.Scan(&p.Lap, &p.Seconds)
		return p, err
	})
}

// GetFastestLaps returns the quickest individual laps under the filter.
func (db *DB) GetFastestLaps(ctx context.Context, filter StatsFilter, limit int) (_ []models.FastestLap, err error) {
	defer db.observe("GetFastestLaps", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	qb := newQueryBuilder(`
		SELECT l.race_id, l.driver_id, COALESCE(d.full_name, ''),
		       r.name, r.year, COALESCE(l.lap, 0), COALESCE(l.position, 0), ` + lapSeconds + `
		FROM lap_times l
		JOIN races r ON l.race_id = r.race_id
		JOIN circuits c ON r.circuit_id = c.circuit_id
		LEFT JOIN drivers d ON l.driver_id = d.driver_id
		WHERE ` + lapSeconds + ` >= ? AND ` + lapSeconds + ` <= ?`)
	qb.addArgs(lapWindowMin, lapWindowMax)
	qb.addStandardFilters(filter)
	qb.addArgs(limit)
	query, args := qb.build(`
		ORDER BY l.milliseconds ASC
		LIMIT ?`)

	return queryAndScan(ctx, db.conn, query, args, func(rows *sql.Rows) (models.FastestLap, error) {
		var f models.FastestLap
		err := rows.Scan(&f.RaceID, &f.DriverID, &f.Driver, &f.Race, &f.Year, &f.Lap, &f.Position, &f.Seconds)
		return f, err
	})
}
