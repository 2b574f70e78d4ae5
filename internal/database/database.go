// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/paddocklab/gridline/internal/config"
	"github.com/paddocklab/gridline/internal/logging"
	"github.com/paddocklab/gridline/internal/metrics"
)

// queryTimeout bounds analytics queries that arrive without a deadline.
const queryTimeout = 30 * time.Second

// DB wraps the DuckDB connection and provides the analytics data access
// methods. Tables are populated once at startup by the ingest package and
// are read-only afterwards, so DB is safe for concurrent use.
type DB struct {
	conn *sql.DB
	cfg  *config.DatabaseConfig
}

// New opens a DuckDB database and creates the schema. The default path
// ":memory:" is the normal mode: the store is rebuilt from the CSV files
// on every start.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	numThreads := cfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	connStr := cfg.Path
	if cfg.Path != ":memory:" {
		// Ensure the parent directory exists for file-backed databases.
		dbDir := filepath.Dir(cfg.Path)
		if dbDir != "" && dbDir != "." {
			if err := os.MkdirAll(dbDir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
			}
		}
	}
	connStr = fmt.Sprintf("%s?threads=%d&max_memory=%s", connStr, numThreads, cfg.MaxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db := &DB{conn: conn, cfg: cfg}

	// DuckDB works through a single connection; the database/sql pool adds
	// nothing here and multiple connections to one in-memory database would
	// each see their own empty catalog.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	if err := db.createTables(); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			logging.Warn().Err(closeErr).Msg("Error closing database after failed init")
		}
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}

// Conn returns the underlying SQL connection. The ingest package uses it
// for bulk inserts.
func (db *DB) Conn() *sql.DB {
	return db.conn
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// Ping checks that the database connection is alive.
func (db *DB) Ping(ctx context.Context) error {
	if db.conn == nil {
		return fmt.Errorf("database connection is nil")
	}
	return db.conn.PingContext(ctx)
}

// ensureContext attaches the default query timeout when the caller did not
// set a deadline.
func (db *DB) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, queryTimeout)
}

// observe records query metrics; use with defer and a named error return:
//
//	defer db.observe("GetTopCircuits", time.Now(), &err)
func (db *DB) observe(operation string, start time.Time, errp *error) {
	var err error
	if errp != nil {
		err = *errp
	}
	metrics.RecordQuery(operation, time.Since(start), err)
}
