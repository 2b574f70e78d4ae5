// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// StatsFilter narrows every analytics query to the selected seasons and
// circuit countries. Empty slices mean "all". The filter always propagates
// through the race join path: tables keyed by race_id join races (aliased
// r) and circuits (aliased c), so season filters apply to r.year and
// country filters to c.country.
type StatsFilter struct {
	Years     []int    `json:"years,omitempty"`
	Countries []string `json:"countries,omitempty"`
}

// IsZero reports whether the filter selects everything.
func (f StatsFilter) IsZero() bool {
	return len(f.Years) == 0 && len(f.Countries) == 0
}

// queryBuilder constructs SQL queries with parameterized filters.
// Base queries end in a WHERE clause (use "WHERE 1=1" when there is no
// base condition) so that filters can always be appended with AND.
type queryBuilder struct {
	baseQuery string
	args      []interface{}
	filters   []string
}

func newQueryBuilder(baseQuery string) *queryBuilder {
	return &queryBuilder{
		baseQuery: baseQuery,
		args:      make([]interface{}, 0, 8),
		filters:   make([]string, 0, 4),
	}
}

// addYearsFilter adds a season filter against the races alias.
func (qb *queryBuilder) addYearsFilter(years []int) *queryBuilder {
	if len(years) > 0 {
		placeholders := make([]string, len(years))
		for i, year := range years {
			placeholders[i] = "?"
			qb.args = append(qb.args, year)
		}
		qb.filters = append(qb.filters, fmt.Sprintf("r.year IN (%s)", strings.Join(placeholders, ",")))
	}
	return qb
}

// addCountriesFilter adds a country filter against the circuits alias.
func (qb *queryBuilder) addCountriesFilter(countries []string) *queryBuilder {
	if len(countries) > 0 {
		placeholders := make([]string, len(countries))
		for i, country := range countries {
			placeholders[i] = "?"
			qb.args = append(qb.args, country)
		}
		qb.filters = append(qb.filters, fmt.Sprintf("c.country IN (%s)", strings.Join(placeholders, ",")))
	}
	return qb
}

// addStandardFilters applies both filter dimensions.
func (qb *queryBuilder) addStandardFilters(filter StatsFilter) *queryBuilder {
	return qb.addYearsFilter(filter.Years).addCountriesFilter(filter.Countries)
}

// addFilter adds a custom filter condition with its arguments.
func (qb *queryBuilder) addFilter(condition string, args ...interface{}) *queryBuilder {
	qb.filters = append(qb.filters, condition)
	qb.args = append(qb.args, args...)
	return qb
}

// addArgs appends raw arguments for placeholders in the suffix (LIMIT etc).
func (qb *queryBuilder) addArgs(args ...interface{}) *queryBuilder {
	qb.args = append(qb.args, args...)
	return qb
}

// build constructs the final query and returns it with its arguments.
func (qb *queryBuilder) build(suffix string) (string, []interface{}) {
	query := qb.baseQuery
	if len(qb.filters) > 0 {
		query += " AND " + strings.Join(qb.filters, " AND ")
	}
	if suffix != "" {
		query += " " + suffix
	}
	return query, qb.args
}

// inPlaceholders returns "?,?,...,?" with n placeholders.
func inPlaceholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

// scanFunc scans a single row into a result value.
type scanFunc[T any] func(*sql.Rows) (T, error)

// queryAndScan executes a query and collects all rows via scan.
func queryAndScan[T any](ctx context.Context, db *sql.DB, query string, args []interface{}, scan scanFunc[T]) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
