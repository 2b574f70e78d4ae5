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

// qualifyingJoin pairs each qualifying position with the same driver's
// race result in the same race. Change is qualifying minus race position,
// so positive means places gained on Sunday. Rows where either side has
// no position are excluded from all change metrics.
const qualifyingJoin = `
		FROM qualifying q
		JOIN results res ON q.race_id = res.race_id AND q.driver_id = res.driver_id
		JOIN races r ON q.race_id = r.race_id
		JOIN circuits c ON r.circuit_id = c.circuit_id`

// GetQualifyingSummary returns the grid-to-finish headline metrics.
func (db *DB) GetQualifyingSummary(ctx context.Context, filter StatsFilter) (_ *models.QualifyingSummary, err error) {
	defer db.observe("GetQualifyingSummary", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	qb := newQueryBuilder(`
		SELECT COALESCE(AVG(q.position - res.position), 0),
		       COALESCE(MAX(q.position - res.position), 0),
		       COALESCE(MIN(q.position - res.position), 0),
		       COALESCE(CAST(COUNT(CASE WHEN q.position > res.position THEN 1 END) AS DOUBLE) * 100.0 / NULLIF(COUNT(*), 0), 0),
		       COUNT(*)` + qualifyingJoin + `
		WHERE q.position IS NOT NULL AND res.position IS NOT NULL`)
	qb.addStandardFilters(filter)
	query, args := qb.build("")

	summary := &models.QualifyingSummary{}
	if err := db.conn.QueryRowContext(ctx, query, args...).Scan(
		&summary.AvgChange, &summary.BestGain, &summary.WorstLoss,
		&summary.ImproverPct, &summary.Rows); err != nil {
		return nil, err
	}

	return summary, nil
}

// GetPositionChangeDistribution returns the histogram of position
// changes, one integer bucket per net change.
func (db *DB) GetPositionChangeDistribution(ctx context.Context, filter StatsFilter) (_ []models.PositionChangeBin, err error) {
	defer db.observe("GetPositionChangeDistribution", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	qb := newQueryBuilder(`
		SELECT q.position - res.position AS change, COUNT(*) AS cnt` + qualifyingJoin + `
		WHERE q.position IS NOT NULL AND res.position IS NOT NULL`)
	qb.addStandardFilters(filter)
	query, args := qb.build(`
		GROUP BY change
		ORDER BY change ASC`)

	return queryAndScan(ctx, db.conn, query, args, func(rows *sql.Rows) (models.PositionChangeBin, error) {
		var b models.PositionChangeBin
		err := rows.Scan(&b.Change, &b.Count)
		return b, err
	})
}

// GetGridConversion returns (qualifying, race) position pairs for the
// conversion scatter. sampleLimit caps the point count so the chart
// stays responsive on large selections; zero means no cap.
func (db *DB) GetGridConversion(ctx context.Context, filter StatsFilter, sampleLimit int) (_ []models.GridConversionPoint, err error) {
	defer db.observe("GetGridConversion", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	qb := newQueryBuilder(`
		SELECT q.position, res.position` + qualifyingJoin + `
		WHERE q.position IS NOT NULL AND res.position IS NOT NULL`)
	qb.addStandardFilters(filter)

	suffix := `
		ORDER BY r.race_id, q.position`
	if sampleLimit > 0 {
		suffix += `
		LIMIT ?`
		qb.addArgs(sampleLimit)
	}
	query, args := qb.build(suffix)

	return queryAndScan(ctx, db.conn, query, args, func(rows *sql.Rows) (models.GridConversionPoint, error) {
		var p models.GridConversionPoint
		err := rows.Scan(&p.QualiPosition, &p.RacePosition)
		return p, err
	})
}

// GetTopGainers returns the biggest grid-to-finish improvements.
func (db *DB) GetTopGainers(ctx context.Context, filter StatsFilter, limit int) (_ []models.PositionGainer, err error) {
	defer db.observe("GetTopGainers", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	qb := newQueryBuilder(`
		SELECT q.race_id, q.driver_id, COALESCE(d.full_name, ''),
		       r.name, r.year, q.position, res.position,
		       q.position - res.position AS gained,
		       COALESCE(res.points, 0)` + qualifyingJoin + `
		LEFT JOIN drivers d ON q.driver_id = d.driver_id
		WHERE q.position IS NOT NULL AND res.position IS NOT NULL`)
	qb.addStandardFilters(filter)
	qb.addArgs(limit)
	query, args := qb.build(`
		ORDER BY gained DESC, res.points DESC
		LIMIT ?`)

	return queryAndScan(ctx, db.conn, query, args, func(rows *sql.Rows) (models.PositionGainer, error) {
		var g models.PositionGainer
		err := rows.Scan(&g.RaceID, &g.DriverID, &g.Driver, &g.Race, &g.Year,
			&g.QualiPosition, &g.RacePosition, &g.Gained, &g.Points)
		return g, err
	})
}
