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

// PositionChangeBar builds the histogram of grid-to-finish changes.
// Positive buckets are places gained.
func PositionChangeBar(bins []models.PositionChangeBin) *charts.Bar {
	labels := make([]string, len(bins))
	values := make([]opts.BarData, len(bins))
	for i, b := range bins {
		label := strconv.Itoa(b.Change)
		if b.Change > 0 {
			label = "+" + label
		}
		labels[i] = label
		values[i] = opts.BarData{Value: b.Count}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts("Position Changes")),
		charts.WithTitleOpts(opts.Title{Title: "Grid to Finish Changes"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	bar.SetXAxis(labels).AddSeries("drivers", values)
	return bar
}

// GridConversionScatter builds the qualifying-vs-race position scatter
// with a y = x reference line; points below the line are places gained.
func GridConversionScatter(points []models.GridConversionPoint) *charts.Scatter {
	data := make([]opts.ScatterData, 0, len(points))
	maxPos := 1
	for _, p := range points {
		if p.QualiPosition > maxPos {
			maxPos = p.QualiPosition
		}
		if p.RacePosition > maxPos {
			maxPos = p.RacePosition
		}
		data = append(data, opts.ScatterData{
			Value: []interface{}{p.QualiPosition, p.RacePosition},
		})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts("Grid Conversion")),
		charts.WithTitleOpts(opts.Title{Title: "Qualifying vs Race Position"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "Qualifying", Min: 0, Max: maxPos + 1}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "Race", Min: 0, Max: maxPos + 1}),
	)
	scatter.AddSeries("results", data,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}),
	)

	reference := charts.NewLine()
	reference.AddSeries("even", []opts.LineData{
		{Value: []interface{}{0, 0}},
		{Value: []interface{}{maxPos + 1, maxPos + 1}},
	}, charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(false)}))
	scatter.Overlap(reference)

	return scatter
}
