// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package database

import (
	"context"
	"time"

	"github.com/paddocklab/gridline/internal/models"
)

// GetOverview returns the headline counts for the dashboard header.
// Counts for optional datasets that did not load are left nil so the
// API and UI can distinguish "zero" from "not available".
func (db *DB) GetOverview(ctx context.Context, filter StatsFilter, catalog *models.Catalog) (_ *models.Overview, err error) {
	defer db.observe("GetOverview", time.Now(), &err)
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	overview := &models.Overview{}

	if overview.Circuits, err = db.countCircuits(ctx, filter); err != nil {
		return nil, err
	}
	if overview.Races, err = db.countRaces(ctx, filter); err != nil {
		return nil, err
	}
	if overview.Countries, err = db.countCountries(ctx, filter); err != nil {
		return nil, err
	}

	if catalog == nil || catalog.Available(models.DatasetPitStops) {
		n, err := db.countJoined(ctx, "pit_stops p", "p.race_id", filter)
		if err != nil {
			return nil, err
		}
		overview.PitStops = &n
	}
	if catalog == nil || catalog.Available(models.DatasetResults) {
		n, err := db.countJoined(ctx, "results res", "res.race_id", filter)
		if err != nil {
			return nil, err
		}
		overview.Results = &n
	}

	return overview, nil
}

// countCircuits counts circuits under the filter. A season filter narrows
// the set to circuits that actually hosted a race in those seasons, which
// needs the races join; without one a plain circuits count is cheaper and
// also includes circuits that never hosted a race.
func (db *DB) countCircuits(ctx context.Context, filter StatsFilter) (int64, error) {
	var qb *queryBuilder
	if len(filter.Years) > 0 {
		qb = newQueryBuilder(`
			SELECT COUNT(DISTINCT c.circuit_id)
			FROM circuits c
			JOIN races r ON r.circuit_id = c.circuit_id
			WHERE 1=1`).addStandardFilters(filter)
	} else {
		qb = newQueryBuilder(`
			SELECT COUNT(*)
			FROM circuits c
			WHERE 1=1`).addCountriesFilter(filter.Countries)
	}
	return db.countOne(ctx, qb)
}

func (db *DB) countRaces(ctx context.Context, filter StatsFilter) (int64, error) {
	qb := newQueryBuilder(`
		SELECT COUNT(*)
		FROM races r
		JOIN circuits c ON r.circuit_id = c.circuit_id
		WHERE 1=1`).addStandardFilters(filter)
	return db.countOne(ctx, qb)
}

func (db *DB) countCountries(ctx context.Context, filter StatsFilter) (int64, error) {
	var qb *queryBuilder
	if len(filter.Years) > 0 {
		qb = newQueryBuilder(`
			SELECT COUNT(DISTINCT c.country)
			FROM circuits c
			JOIN races r ON r.circuit_id = c.circuit_id
			WHERE 1=1`).addStandardFilters(filter)
	} else {
		qb = newQueryBuilder(`
			SELECT COUNT(DISTINCT c.country)
			FROM circuits c
			WHERE 1=1`).addCountriesFilter(filter.Countries)
	}
	return db.countOne(ctx, qb)
}

// countJoined counts rows of a race-keyed table under the filter.
func (db *DB) countJoined(ctx context.Context, table, raceKey string, filter StatsFilter) (int64, error) {
	qb := newQueryBuilder(`
		SELECT COUNT(*)
		FROM ` + table + `
		JOIN races r ON ` + raceKey + ` = r.race_id
		JOIN circuits c ON r.circuit_id = c.circuit_id
		WHERE 1=1`)
	qb.addStandardFilters(filter)
	return db.countOne(ctx, qb)
}

func (db *DB) countOne(ctx context.Context, qb *queryBuilder) (int64, error) {
	query, args := qb.build("")
	var n int64
	if err := db.conn.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
