// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package ingest

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the two file-level failure modes that are worth
// distinguishing in logs and in the /status endpoint.
var (
	// ErrFileNotFound means the CSV file does not exist in the data directory.
	ErrFileNotFound = errors.New("file not found")

	// ErrEmptyFile means the CSV file exists but has no data rows.
	ErrEmptyFile = errors.New("file is empty")
)

// SchemaError means a CSV file is present but is missing columns the
// loader cannot work without.
type SchemaError struct {
	File    string
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: missing required columns: %s", e.File, strings.Join(e.Missing, ", "))
}
