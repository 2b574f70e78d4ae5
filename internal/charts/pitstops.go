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

// PitStopHistogram builds the pit stop duration distribution.
func PitStopHistogram(bins []models.DurationBin) *charts.Bar {
	starts := make([]float64, len(bins))
	counts := make([]int64, len(bins))
	for i, b := range bins {
		starts[i] = b.Bin
		counts[i] = b.Count
	}
	return histogramBar("Pit Stop Durations", "stops", "s", starts, counts)
}

// StopNumberBar builds the stops-by-stop-number chart.
func StopNumberBar(rows []models.StopNumberCount) *charts.Bar {
	labels := make([]string, len(rows))
	values := make([]opts.BarData, len(rows))
	for i, row := range rows {
		labels[i] = "Stop " + strconv.Itoa(row.Stop)
		values[i] = opts.BarData{Value: row.Count}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts("Stops per Stop Number")),
		charts.WithTitleOpts(opts.Title{Title: "Stops per Stop Number"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries("stops", values,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)
	return bar
}
