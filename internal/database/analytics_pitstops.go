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

// Pit stop duration windows in seconds. Headline metrics discard anything
// implausible (botched stops, red flag periods recorded as one stop), the
// histogram uses a tighter window so a handful of long stops cannot
// flatten the distribution.
const (
	pitMetricMin = 0.0
	pitMetricMax = 300.0
	pitHistMin   = 0.5
	pitHistMax   = 60.0
)

// GetPitStopSummary returns the pit stop headline metrics under the
// filter. Stops per race divides the filtered stop count by the filtered
// race count, so races with zero recorded stops still count in the
// denominator.
func (db *DB) GetPitStopSummary(ctx context.Context, filter StatsFilter) (_ *models.PitStopSummary, err error) {
	defer db.observe("GetPitStopSummary", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	qb := newQueryBuilder(`
		SELECT COALESCE(AVG(p.duration), 0),
		       COALESCE(MIN(p.duration), 0),
		       COUNT(*)
		FROM pit_stops p
		JOIN races r ON p.race_id = r.race_id
		JOIN circuits c ON r.circuit_id = c.circuit_id
		WHERE p.duration > ? AND p.duration < ?`)
	qb.addArgs(pitMetricMin, pitMetricMax)
	qb.addStandardFilters(filter)
	query, args := qb.build("")

	summary := &models.PitStopSummary{}
	if err := db.conn.QueryRowContext(ctx, query, args...).Scan(
		&summary.AvgDuration, &summary.FastestDuration, &summary.TotalStops); err != nil {
		return nil, err
	}

	races, err := db.countRaces(ctx, filter)
	if err != nil {
		return nil, err
	}
	if races > 0 {
		summary.StopsPerRace = float64(summary.TotalStops) / float64(races)
	}

	return summary, nil
}

// GetPitStopDistribution returns a histogram of pit stop durations.
// Bins are left-closed with the given width in seconds.
func (db *DB) GetPitStopDistribution(ctx context.Context, filter StatsFilter, binWidth float64) (_ []models.DurationBin, err error) {
	defer db.observe("GetPitStopDistribution", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if binWidth <= 0 {
		binWidth = 0.5
	}

	qb := newQueryBuilder(`
		SELECT FLOOR(p.duration / ?) * ? AS bin, COUNT(*) AS cnt
		FROM pit_stops p
		JOIN races r ON p.race_id = r.race_id
		JOIN circuits c ON r.circuit_id = c.circuit_id
		WHERE p.duration >= ? AND p.duration <= ?`)
	qb.addArgs(binWidth, binWidth, pitHistMin, pitHistMax)
	qb.addStandardFilters(filter)
	query, args := qb.build(`
		GROUP BY bin
		ORDER BY bin ASC`)

	return queryAndScan(ctx, db.conn, query, args, func(rows *sql.Rows) (models.DurationBin, error) {
		var b models.DurationBin
		err := rows.Scan(&b.Bin, &b.Count)
		return b, err
	})
}

// GetStopNumberCounts returns how many first stops, second stops and so
// on occurred under the filter.
func (db *DB) GetStopNumberCounts(ctx context.Context, filter StatsFilter) (_ []models.StopNumberCount, err error) {
	defer db.observe("GetStopNumberCounts", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	qb := newQueryBuilder(`
		SELECT p.stop, COUNT(*) AS cnt
		FROM pit_stops p
		JOIN races r ON p.race_id = r.race_id
		JOIN circuits c ON r.circuit_id = c.circuit_id
		WHERE p.stop IS NOT NULL`)
	qb.addStandardFilters(filter)
	query, args := qb.build(`
		GROUP BY p.stop
		ORDER BY p.stop ASC`)

	return queryAndScan(ctx, db.conn, query, args, func(rows *sql.Rows) (models.StopNumberCount, error) {
		var s models.StopNumberCount
		err := rows.Scan(&s.Stop, &s.Count)
		return s, err
	})
}

// GetFastestPitStops returns the quickest stops under the filter.
// Drivers join is optional so the table still renders without the
// drivers dataset, just with an empty driver column.
func (db *DB) GetFastestPitStops(ctx context.Context, filter StatsFilter, limit int) (_ []models.PitStop, err error) {
	defer db.observe("GetFastestPitStops", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	qb := newQueryBuilder(`
		SELECT p.race_id, p.driver_id, COALESCE(d.full_name, ''),
		       r.name, r.year, COALESCE(p.stop, 0), COALESCE(p.lap, 0), p.duration
		FROM pit_stops p
		JOIN races r ON p.race_id = r.race_id
		JOIN circuits c ON r.circuit_id = c.circuit_id
		LEFT JOIN drivers d ON p.driver_id = d.driver_id
		WHERE p.duration > ? AND p.duration < ?`)
	qb.addArgs(pitMetricMin, pitMetricMax)
	qb.addStandardFilters(filter)
	qb.addArgs(limit)
	query, args := qb.build(`
		ORDER BY p.duration ASC
		LIMIT ?`)

	return queryAndScan(ctx, db.conn, query, args, func(rows *sql.Rows) (models.PitStop, error) {
		var p models.PitStop
		err := rows.Scan(&p.RaceID, &p.DriverID, &p.Driver, &p.Race, &p.Year, &p.Stop, &p.Lap, &p.Duration)
		return p, err
	})
}
