// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package ingest

import (
	"context"
	"strings"

	"github.com/paddocklab/gridline/internal/models"
)

// Drop reasons used in the ingest metrics.
const (
	reasonMissingKey         = "missing_key"
	reasonMissingCoordinates = "missing_coordinates"
	reasonMissingDuration    = "missing_duration"
	reasonMissingTime        = "missing_time"
)

func (l *Loader) loadCircuits(ctx context.Context, t *csvTable) (int64, error) {
	// Some exports mangle the first header into a single stray character.
	// When that happens the column is the circuit id.
	if len(t.headers) > 0 && len(t.headers[0]) == 1 && !t.has("circuitid") {
		t.renameHeader(0, "circuitid")
	}
	if err := t.require("circuitid", "name", "lat", "lng"); err != nil {
		return 0, err
	}

	rows := make([][]interface{}, 0, len(t.rows))
	for _, row := range t.rows {
		id, ok := parseInt(t.field(row, "circuitid"))
		name := strings.TrimSpace(t.field(row, "name"))
		if !ok || name == "" {
			dropRow(models.DatasetCircuits, reasonMissingKey)
			continue
		}
		lat, latOK := parseFloat(t.field(row, "lat"))
		lng, lngOK := parseFloat(t.field(row, "lng"))
		if !latOK || !lngOK {
			dropRow(models.DatasetCircuits, reasonMissingCoordinates)
			continue
		}
		rows = append(rows, []interface{}{
			id, name,
			nullableString(t.field(row, "location")),
			nullableString(t.field(row, "country")),
			lat, lng,
			nullableFloat(parseFloat(t.field(row, "alt"))),
		})
	}

	return l.insertRows(ctx, `INSERT INTO circuits
		(circuit_id, name, location, country, lat, lng, alt)
		VALUES (?, ?, ?, ?, ?, ?, ?)`, rows)
}

func (l *Loader) loadRaces(ctx context.Context, t *csvTable) (int64, error) {
	if err := t.require("raceid", "year", "circuitid", "name"); err != nil {
		return 0, err
	}

	rows := make([][]interface{}, 0, len(t.rows))
	for _, row := range t.rows {
		id, idOK := parseInt(t.field(row, "raceid"))
		year, yearOK := parseInt(t.field(row, "year"))
		circuitID, circuitOK := parseInt(t.field(row, "circuitid"))
		name := strings.TrimSpace(t.field(row, "name"))
		if !idOK || !yearOK || !circuitOK || name == "" {
			dropRow(models.DatasetRaces, reasonMissingKey)
			continue
		}
		rows = append(rows, []interface{}{
			id, year, circuitID, name,
			nullableDate(parseDate(t.field(row, "date"))),
		})
	}

	return l.insertRows(ctx, `INSERT INTO races
		(race_id, year, circuit_id, name, race_date)
		VALUES (?, ?, ?, ?, ?)`, rows)
}

func (l *Loader) loadPitStops(ctx context.Context, t *csvTable) (int64, error) {
	if err := t.require("raceid", "driverid"); err != nil {
		return 0, err
	}
	if !t.has("duration") && !t.has("milliseconds") {
		return 0, &SchemaError{File: t.file, Missing: []string{"duration"}}
	}

	// Durations come either from a duration column in seconds or derived
	// from milliseconds. The milliseconds fallback also kicks in when the
	// duration column exists but coerces to NULL for more than half the
	// rows, which happens when it holds mm:ss.t formatted strings.
	durations := make([]interface{}, len(t.rows))
	missing := 0
	if t.has("duration") {
		for i, row := range t.rows {
			if v, ok := parseFloat(t.field(row, "duration")); ok {
				durations[i] = v
			} else {
				missing++
			}
		}
	} else {
		missing = len(t.rows)
	}
	if t.has("milliseconds") && missing*2 > len(t.rows) {
		for i, row := range t.rows {
			if ms, ok := parseFloat(t.field(row, "milliseconds")); ok {
				durations[i] = ms / 1000.0
			} else {
				durations[i] = nil
			}
		}
	}

	rows := make([][]interface{}, 0, len(t.rows))
	for i, row := range t.rows {
		raceID, raceOK := parseInt(t.field(row, "raceid"))
		driverID, driverOK := parseInt(t.field(row, "driverid"))
		if !raceOK || !driverOK {
			dropRow(models.DatasetPitStops, reasonMissingKey)
			continue
		}
		if durations[i] == nil {
			dropRow(models.DatasetPitStops, reasonMissingDuration)
			continue
		}
		rows = append(rows, []interface{}{
			raceID, driverID,
			nullableInt(parseInt(t.field(row, "stop"))),
			nullableInt(parseInt(t.field(row, "lap"))),
			durations[i],
			nullableInt(parseInt(t.field(row, "milliseconds"))),
		})
	}

	return l.insertRows(ctx, `INSERT INTO pit_stops
		(race_id, driver_id, stop, lap, duration, milliseconds)
		VALUES (?, ?, ?, ?, ?, ?)`, rows)
}

func (l *Loader) loadConstructors(ctx context.Context, t *csvTable) (int64, error) {
	if err := t.require("constructorid", "name"); err != nil {
		return 0, err
	}

	rows := make([][]interface{}, 0, len(t.rows))
	for _, row := range t.rows {
		id, ok := parseInt(t.field(row, "constructorid"))
		name := strings.TrimSpace(t.field(row, "name"))
		if !ok || name == "" {
			dropRow(models.DatasetConstructors, reasonMissingKey)
			continue
		}
		rows = append(rows, []interface{}{id, name})
	}

	return l.insertRows(ctx, `INSERT INTO constructors
		(constructor_id, name)
		VALUES (?, ?)`, rows)
}

func (l *Loader) loadResults(ctx context.Context, t *csvTable) (int64, error) {
	if err := t.require("raceid", "driverid", "points"); err != nil {
		return 0, err
	}

	rows := make([][]interface{}, 0, len(t.rows))
	for _, row := range t.rows {
		raceID, raceOK := parseInt(t.field(row, "raceid"))
		driverID, driverOK := parseInt(t.field(row, "driverid"))
		if !raceOK || !driverOK {
			dropRow(models.DatasetResults, reasonMissingKey)
			continue
		}
		// Unscored or unparseable points count as zero, not NULL, so
		// points sums stay comparable across eras.
		points, ok := parseFloat(t.field(row, "points"))
		if !ok {
			points = 0
		}
		rows = append(rows, []interface{}{
			raceID, driverID,
			nullableInt(parseInt(t.field(row, "constructorid"))),
			nullableInt(parseInt(t.field(row, "grid"))),
			nullableInt(parseInt(t.field(row, "position"))),
			points,
		})
	}

	return l.insertRows(ctx, `INSERT INTO results
		(race_id, driver_id, constructor_id, grid, position, points)
		VALUES (?, ?, ?, ?, ?, ?)`, rows)
}

func (l *Loader) loadQualifying(ctx context.Context, t *csvTable) (int64, error) {
	if err := t.require("raceid", "driverid", "position"); err != nil {
		return 0, err
	}

	rows := make([][]interface{}, 0, len(t.rows))
	for _, row := range t.rows {
		raceID, raceOK := parseInt(t.field(row, "raceid"))
		driverID, driverOK := parseInt(t.field(row, "driverid"))
		if !raceOK || !driverOK {
			dropRow(models.DatasetQualifying, reasonMissingKey)
			continue
		}
		rows = append(rows, []interface{}{
			raceID, driverID,
			nullableInt(parseInt(t.field(row, "position"))),
		})
	}

	return l.insertRows(ctx, `INSERT INTO qualifying
		(race_id, driver_id, position)
		VALUES (?, ?, ?)`, rows)
}

func (l *Loader) loadDrivers(ctx context.Context, t *csvTable) (int64, error) {
	if err := t.require("driverid"); err != nil {
		return 0, err
	}

	haveNames := t.has("forename") && t.has("surname")
	rows := make([][]interface{}, 0, len(t.rows))
	for _, row := range t.rows {
		id, ok := parseInt(t.field(row, "driverid"))
		if !ok {
			dropRow(models.DatasetDrivers, reasonMissingKey)
			continue
		}
		forename := strings.TrimSpace(t.field(row, "forename"))
		surname := strings.TrimSpace(t.field(row, "surname"))
		var fullName interface{}
		if haveNames && forename != "" && surname != "" {
			fullName = forename + " " + surname
		}
		rows = append(rows, []interface{}{
			id,
			nullableString(forename),
			nullableString(surname),
			fullName,
		})
	}

	return l.insertRows(ctx, `INSERT INTO drivers
		(driver_id, forename, surname, full_name)
		VALUES (?, ?, ?, ?)`, rows)
}

func (l *Loader) loadLapTimes(ctx context.Context, t *csvTable) (int64, error) {
	if err := t.require("raceid", "driverid", "milliseconds"); err != nil {
		return 0, err
	}

	rows := make([][]interface{}, 0, len(t.rows))
	for _, row := range t.rows {
		raceID, raceOK := parseInt(t.field(row, "raceid"))
		driverID, driverOK := parseInt(t.field(row, "driverid"))
		if !raceOK || !driverOK {
			dropRow(models.DatasetLapTimes, reasonMissingKey)
			continue
		}
		ms, ok := parseInt(t.field(row, "milliseconds"))
		if !ok {
			dropRow(models.DatasetLapTimes, reasonMissingTime)
			continue
		}
		rows = append(rows, []interface{}{
			raceID, driverID,
			nullableInt(parseInt(t.field(row, "lap"))),
			nullableInt(parseInt(t.field(row, "position"))),
			ms,
		})
	}

	return l.insertRows(ctx, `INSERT INTO lap_times
		(race_id, driver_id, lap, position, milliseconds)
		VALUES (?, ?, ?, ?, ?)`, rows)
}
