// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package ingest

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/paddocklab/gridline/internal/database"
	"github.com/paddocklab/gridline/internal/logging"
	"github.com/paddocklab/gridline/internal/metrics"
	"github.com/paddocklab/gridline/internal/models"
)

// Loader reads the fixed CSV files from the data directory and bulk
// loads them into the analytics store.
type Loader struct {
	db  *database.DB
	dir string
}

// New creates a Loader for the given data directory.
func New(db *database.DB, dir string) *Loader {
	return &Loader{db: db, dir: dir}
}

// LoadAll loads every dataset and returns the resulting catalog.
//
// Failure handling is two-tier: circuits and races are required, their
// load errors abort startup. Every other dataset degrades gracefully; a
// failure is logged, recorded in the catalog and the dashboard sections
// depending on it are hidden.
func (l *Loader) LoadAll(ctx context.Context) (*models.Catalog, error) {
	if err := l.db.TruncateAll(ctx); err != nil {
		return nil, fmt.Errorf("reset tables: %w", err)
	}

	catalog := models.NewCatalog()
	for _, dataset := range models.AllDatasets {
		start := time.Now()
		rows, err := l.loadDataset(ctx, dataset)
		if err != nil {
			if dataset.Required() {
				return nil, fmt.Errorf("required dataset %s: %w", dataset, err)
			}
			logging.Warn().
				Err(err).
				Str("dataset", string(dataset)).
				Msg("Optional dataset unavailable, hiding dependent sections")
			catalog.SetFailed(dataset, err)
			continue
		}
		catalog.SetLoaded(dataset, rows)
		metrics.RecordIngest(string(dataset), rows, time.Since(start))
		logging.Info().
			Str("dataset", string(dataset)).
			Int64("rows", rows).
			Dur("duration", time.Since(start)).
			Msg("Dataset loaded")
	}

	return catalog, nil
}

func (l *Loader) loadDataset(ctx context.Context, dataset models.Dataset) (int64, error) {
	file := dataset.FileName()
	table, err := readCSV(filepath.Join(l.dir, file), file)
	if err != nil {
		return 0, err
	}

	switch dataset {
	case models.DatasetCircuits:
		return l.loadCircuits(ctx, table)
	case models.DatasetRaces:
		return l.loadRaces(ctx, table)
	case models.DatasetPitStops:
		return l.loadPitStops(ctx, table)
	case models.DatasetConstructors:
		return l.loadConstructors(ctx, table)
	case models.DatasetResults:
		return l.loadResults(ctx, table)
	case models.DatasetQualifying:
		return l.loadQualifying(ctx, table)
	case models.DatasetDrivers:
		return l.loadDrivers(ctx, table)
	case models.DatasetLapTimes:
		return l.loadLapTimes(ctx, table)
	default:
		return 0, fmt.Errorf("unknown dataset %s", dataset)
	}
}

// insertRows bulk inserts rows inside one transaction with a prepared
// statement. All-or-nothing per dataset.
func (l *Loader) insertRows(ctx context.Context, query string, rows [][]interface{}) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	tx, err := l.db.Conn().BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return 0, fmt.Errorf("insert row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}

	return int64(len(rows)), nil
}

// dropRow records a dropped row in the ingest metrics.
func dropRow(dataset models.Dataset, reason string) {
	metrics.IngestRowsDropped.WithLabelValues(string(dataset), reason).Inc()
}
