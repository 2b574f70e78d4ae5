// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package database

import (
	"context"
	"fmt"
)

// createTables creates the eight source tables. Identifiers and foreign
// keys are plain columns: the sources are assumed internally consistent
// (unmatched keys simply drop out of joins) and enforcing constraints here
// would turn a dirty optional file into a hard load failure, which the
// ingest policy forbids.
var tableDDL = []string{
	`CREATE TABLE IF NOT EXISTS circuits (
		circuit_id BIGINT NOT NULL,
		name VARCHAR NOT NULL,
		location VARCHAR,
		country VARCHAR,
		lat DOUBLE NOT NULL,
		lng DOUBLE NOT NULL,
		alt DOUBLE
	)`,
	`CREATE TABLE IF NOT EXISTS races (
		race_id BIGINT NOT NULL,
		year INTEGER NOT NULL,
		circuit_id BIGINT NOT NULL,
		name VARCHAR NOT NULL,
		race_date DATE
	)`,
	`CREATE TABLE IF NOT EXISTS pit_stops (
		race_id BIGINT NOT NULL,
		driver_id BIGINT NOT NULL,
		stop INTEGER,
		lap INTEGER,
		duration DOUBLE NOT NULL,
		milliseconds BIGINT
	)`,
	`CREATE TABLE IF NOT EXISTS constructors (
		constructor_id BIGINT NOT NULL,
		name VARCHAR NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS results (
		race_id BIGINT NOT NULL,
		driver_id BIGINT NOT NULL,
		constructor_id BIGINT,
		grid INTEGER,
		position INTEGER,
		points DOUBLE NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS qualifying (
		race_id BIGINT NOT NULL,
		driver_id BIGINT NOT NULL,
		position INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS drivers (
		driver_id BIGINT NOT NULL,
		forename VARCHAR,
		surname VARCHAR,
		full_name VARCHAR
	)`,
	`CREATE TABLE IF NOT EXISTS lap_times (
		race_id BIGINT NOT NULL,
		driver_id BIGINT NOT NULL,
		lap INTEGER,
		position INTEGER,
		milliseconds BIGINT NOT NULL
	)`,
}

func (db *DB) createTables() error {
	ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
	defer cancel()

	for _, ddl := range tableDDL {
		if _, err := db.conn.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// TruncateAll empties every table. The ingest package calls this before a
// load into a file-backed database left over from a previous run.
func (db *DB) TruncateAll(ctx context.Context) error {
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	for _, table := range []string{
		"circuits", "races", "pit_stops", "constructors",
		"results", "qualifying", "drivers", "lap_times",
	} {
		if _, err := db.conn.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("truncate %s: %w", table, err)
		}
	}
	return nil
}
