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

// LapTimeHistogram builds the lap time distribution.
func LapTimeHistogram(bins []models.LapTimeBin) *charts.Bar {
	starts := make([]float64, len(bins))
	counts := make([]int64, len(bins))
	for i, b := range bins {
		starts[i] = b.Bin
		counts[i] = b.Count
	}
	return histogramBar("Lap Times", "laps", "s", starts, counts)
}

// LapEvolutionLine builds the median lap time per lap number curve.
func LapEvolutionLine(points []models.LapPoint) *charts.Line {
	labels := make([]string, len(points))
	values := make([]opts.LineData, len(points))
	for i, p := range points {
		labels[i] = strconv.Itoa(p.Lap)
		values[i] = opts.LineData{Value: p.Seconds}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts("Lap Time Evolution")),
		charts.WithTitleOpts(opts.Title{Title: "Median Lap Time by Lap"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Lap"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Seconds", Scale: opts.Bool(true)}),
	)
	line.SetXAxis(labels).
		AddSeries("median", values,
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
		)
	return line
}
