// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

// Package charts builds the server-rendered dashboard visualizations on
// go-echarts. Every builder is a pure function from query results to a
// configured chart; rendering happens in the HTTP handlers.
package charts

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	chartTheme  = "dark"
	chartWidth  = "100%"
	chartHeight = "480px"
)

// initOpts returns the shared initialization options for one chart.
func initOpts(title string) opts.Initialization {
	return opts.Initialization{
		PageTitle: title,
		Theme:     chartTheme,
		Width:     chartWidth,
		Height:    chartHeight,
	}
}

// horizontalBar builds a ranking bar chart with categories on the Y axis,
// best first from top. go-echarts draws category axes bottom-up, so the
// rows go in reversed.
func horizontalBar(title, seriesName string, labels []string, values []opts.BarData) *charts.Bar {
	rLabels := make([]string, len(labels))
	rValues := make([]opts.BarData, len(values))
	for i := range labels {
		rLabels[len(labels)-1-i] = labels[i]
		rValues[len(values)-1-i] = values[i]
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts(title)),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(rLabels).
		AddSeries(seriesName, rValues,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "right"}),
		)
	bar.XYReversal()
	return bar
}

// histogramBar builds a histogram from pre-binned counts.
func histogramBar(title, seriesName, unit string, bins []float64, counts []int64) *charts.Bar {
	labels := make([]string, len(bins))
	values := make([]opts.BarData, len(counts))
	for i := range bins {
		labels[i] = fmt.Sprintf("%g%s", bins[i], unit)
		values[i] = opts.BarData{Value: counts[i]}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts(title)),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	bar.SetXAxis(labels).AddSeries(seriesName, values)
	return bar
}
