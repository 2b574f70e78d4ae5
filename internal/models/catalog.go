// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package models

// Dataset identifies one of the fixed source files.
type Dataset string

// The eight source datasets. Circuits and Races are required for the
// service to start; the rest degrade gracefully when missing.
const (
	DatasetCircuits     Dataset = "circuits"
	DatasetRaces        Dataset = "races"
	DatasetPitStops     Dataset = "pit_stops"
	DatasetConstructors Dataset = "constructors"
	DatasetResults      Dataset = "results"
	DatasetQualifying   Dataset = "qualifying"
	DatasetDrivers      Dataset = "drivers"
	DatasetLapTimes     Dataset = "lap_times"
)

// AllDatasets lists every dataset in load order.
var AllDatasets = []Dataset{
	DatasetCircuits,
	DatasetRaces,
	DatasetPitStops,
	DatasetConstructors,
	DatasetResults,
	DatasetQualifying,
	DatasetDrivers,
	DatasetLapTimes,
}

// Required reports whether the dataset is required for baseline operation.
func (d Dataset) Required() bool {
	return d == DatasetCircuits || d == DatasetRaces
}

// FileName returns the fixed CSV file name for the dataset.
func (d Dataset) FileName() string {
	return string(d) + ".csv"
}

// DatasetStatus describes the load outcome for one dataset.
type DatasetStatus struct {
	Dataset Dataset `json:"dataset"`
	Loaded  bool    `json:"loaded"`
	Rows    int64   `json:"rows"`
	Error   string  `json:"error,omitempty"`
}

// Catalog records which datasets loaded and with how many rows. It is
// populated once at startup and read-only afterwards; every handler that
// depends on an optional dataset consults it before querying.
type Catalog struct {
	statuses map[Dataset]DatasetStatus
}

// NewCatalog creates an empty catalog with every dataset marked unloaded.
func NewCatalog() *Catalog {
	c := &Catalog{statuses: make(map[Dataset]DatasetStatus, len(AllDatasets))}
	for _, d := range AllDatasets {
		c.statuses[d] = DatasetStatus{Dataset: d}
	}
	return c
}

// SetLoaded marks a dataset as loaded with the given row count.
func (c *Catalog) SetLoaded(d Dataset, rows int64) {
	c.statuses[d] = DatasetStatus{Dataset: d, Loaded: true, Rows: rows}
}

// SetFailed marks a dataset as failed with the load error.
func (c *Catalog) SetFailed(d Dataset, err error) {
	s := DatasetStatus{Dataset: d}
	if err != nil {
		s.Error = err.Error()
	}
	c.statuses[d] = s
}

// Available reports whether a dataset loaded successfully.
func (c *Catalog) Available(d Dataset) bool {
	return c.statuses[d].Loaded
}

// Rows returns the loaded row count for a dataset.
func (c *Catalog) Rows(d Dataset) int64 {
	return c.statuses[d].Rows
}

// Statuses returns per-dataset statuses in load order.
func (c *Catalog) Statuses() []DatasetStatus {
	out := make([]DatasetStatus, 0, len(AllDatasets))
	for _, d := range AllDatasets {
		out = append(out, c.statuses[d])
	}
	return out
}
