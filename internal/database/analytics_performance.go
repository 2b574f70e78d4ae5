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

// GetPerformanceSummary returns the race results headline metrics.
func (db *DB) GetPerformanceSummary(ctx context.Context, filter StatsFilter) (_ *models.PerformanceSummary, err error) {
	defer db.observe("GetPerformanceSummary", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	qb := newQueryBuilder(`
		SELECT COUNT(*),
		       COALESCE(SUM(res.points), 0),
		       COUNT(DISTINCT CASE WHEN res.position = 1 THEN res.driver_id END),
		       COUNT(DISTINCT res.constructor_id)
		FROM results res
		JOIN races r ON res.race_id = r.race_id
		JOIN circuits c ON r.circuit_id = c.circuit_id
		WHERE 1=1`)
	qb.addStandardFilters(filter)
	query, args := qb.build("")

	summary := &models.PerformanceSummary{}
	if err := db.conn.QueryRowContext(ctx, query, args...).Scan(
		&summary.Results, &summary.TotalPoints, &summary.Winners, &summary.Constructors); err != nil {
		return nil, err
	}

	return summary, nil
}

// GetTopConstructors returns constructors ranked by points scored under
// the filter. Results with no resolvable constructor are grouped under
// "Unknown" rather than dropped so the points total stays honest.
func (db *DB) GetTopConstructors(ctx context.Context, filter StatsFilter, limit int) (_ []models.ConstructorPoints, err error) {
	defer db.observe("GetTopConstructors", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	qb := newQueryBuilder(`
		SELECT COALESCE(con.name, 'Unknown') AS constructor, SUM(res.points) AS points
		FROM results res
		JOIN races r ON res.race_id = r.race_id
		JOIN circuits c ON r.circuit_id = c.circuit_id
		LEFT JOIN constructors con ON res.constructor_id = con.constructor_id
		WHERE 1=1`)
	qb.addStandardFilters(filter)
	qb.addArgs(limit)
	query, args := qb.build(`
		GROUP BY constructor
		ORDER BY points DESC, constructor ASC
		LIMIT ?`)

	return queryAndScan(ctx, db.conn, query, args, func(rows *sql.Rows) (models.ConstructorPoints, error) {
		var row models.ConstructorPoints
		err := rows.Scan(&row.Constructor, &row.Points)
		return row, err
	})
}

// GetPositionDistribution counts classified finishes for positions 1
// through maxPosition (the points-paying end of the field).
func (db *DB) GetPositionDistribution(ctx context.Context, filter StatsFilter, maxPosition int) (_ []models.PositionCount, err error) {
	defer db.observe("GetPositionDistribution", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if maxPosition <= 0 {
		maxPosition = 10
	}

	qb := newQueryBuilder(`
		SELECT res.position, COUNT(*) AS cnt
		FROM results res
		JOIN races r ON res.race_id = r.race_id
		JOIN circuits c ON r.circuit_id = c.circuit_id
		WHERE res.position IS NOT NULL AND res.position >= 1 AND res.position <= ?`)
	qb.addArgs(maxPosition)
	qb.addStandardFilters(filter)
	query, args := qb.build(`
		GROUP BY res.position
		ORDER BY res.position ASC`)

	return queryAndScan(ctx, db.conn, query, args, func(rows *sql.Rows) (models.PositionCount, error) {
		var p models.PositionCount
		err := rows.Scan(&p.Position, &p.Count)
		return p, err
	})
}
