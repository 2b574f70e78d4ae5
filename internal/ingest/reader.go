// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// csvTable is one parsed CSV file with normalized headers.
type csvTable struct {
	file    string
	headers []string
	index   map[string]int
	rows    [][]string
}

// readCSV parses a CSV file into a csvTable. Ragged rows are tolerated
// (short rows read as empty cells), headers are normalized on the way in.
func readCSV(path, file string) (*csvTable, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", file, ErrFileNotFound)
		}
		return nil, fmt.Errorf("open %s: %w", file, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	headers, err := r.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: %w", file, ErrEmptyFile)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s header: %w", file, err)
	}

	t := &csvTable{
		file:    file,
		headers: normalizeHeaders(headers),
		index:   make(map[string]int, len(headers)),
	}
	for i, h := range t.headers {
		if _, dup := t.index[h]; !dup {
			t.index[h] = i
		}
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", file, err)
		}
		t.rows = append(t.rows, record)
	}

	if len(t.rows) == 0 {
		return nil, fmt.Errorf("%s: %w", file, ErrEmptyFile)
	}

	return t, nil
}

// renameHeader renames the header at position i and reindexes.
func (t *csvTable) renameHeader(i int, name string) {
	if i < 0 || i >= len(t.headers) {
		return
	}
	delete(t.index, t.headers[i])
	t.headers[i] = name
	if _, exists := t.index[name]; !exists {
		t.index[name] = i
	}
}

// has reports whether a column exists.
func (t *csvTable) has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// require returns a SchemaError naming every missing column, or nil.
func (t *csvTable) require(names ...string) error {
	var missing []string
	for _, name := range names {
		if !t.has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{File: t.file, Missing: missing}
	}
	return nil
}

// field returns the cell for a column in a row, empty when the column is
// absent or the row is short.
func (t *csvTable) field(row []string, name string) string {
	i, ok := t.index[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
