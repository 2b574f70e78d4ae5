// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package charts

import (
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/paddocklab/gridline/internal/models"
)

// ConstructorPointsBar builds the points-per-constructor ranking.
func ConstructorPointsBar(rows []models.ConstructorPoints) *charts.Bar {
	labels := make([]string, len(rows))
	values := make([]opts.BarData, len(rows))
	for i, row := range rows {
		labels[i] = row.Constructor
		values[i] = opts.BarData{Value: row.Points}
	}
	return horizontalBar("Constructor Points", "points", labels, values)
}

// PositionDistributionBar builds the finishing position counts for the
// front of the field.
func PositionDistributionBar(rows []models.PositionCount) *charts.Bar {
	labels := make([]string, len(rows))
	values := make([]opts.BarData, len(rows))
	for i, row := range rows {
		labels[i] = "P" + strconv.Itoa(row.Position)
		values[i] = opts.BarData{Value: row.Count}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts("Finishing Positions")),
		charts.WithTitleOpts(opts.Title{Title: "Finishing Positions"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).AddSeries("finishes", values)
	return bar
}
