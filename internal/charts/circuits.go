// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package charts

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/paddocklab/gridline/internal/models"
)

// CircuitMap builds the world map of circuits, marker color keyed to how
// many races the circuit hosted under the active filter.
func CircuitMap(points []models.CircuitMapPoint) *charts.Geo {
	data := make([]opts.GeoData, 0, len(points))
	var maxRaces int64 = 1
	for _, p := range points {
		if p.RaceCount > maxRaces {
			maxRaces = p.RaceCount
		}
		data = append(data, opts.GeoData{
			Name:  fmt.Sprintf("%s (%s)", p.Name, p.Country),
			Value: []float64{p.Lng, p.Lat, float64(p.RaceCount)},
		})
	}

	geo := charts.NewGeo()
	geo.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Circuit Map",
			Theme:     chartTheme,
			Width:     chartWidth,
			Height:    "560px",
		}),
		charts.WithTitleOpts(opts.Title{Title: "Circuits of the World"}),
		charts.WithGeoComponentOpts(opts.GeoComponent{
			Map:       "world",
			ItemStyle: &opts.ItemStyle{Color: "#1f2430"},
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxRaces),
			InRange:    &opts.VisualMapInRange{Color: []string{"#50a3ba", "#eac736", "#d94e5d"}},
		}),
	)
	geo.AddSeries("races", types.ChartEffectScatter, data)
	return geo
}

// TopCircuitsBar builds the races-per-circuit ranking.
func TopCircuitsBar(rows []models.CircuitRaceCount) *charts.Bar {
	labels := make([]string, len(rows))
	values := make([]opts.BarData, len(rows))
	for i, row := range rows {
		labels[i] = row.Circuit
		values[i] = opts.BarData{Value: row.Races}
	}
	return horizontalBar("Most Raced Circuits", "races", labels, values)
}

// RacesByCountryBar builds the races-per-country ranking.
func RacesByCountryBar(rows []models.CountryRaceCount) *charts.Bar {
	labels := make([]string, len(rows))
	values := make([]opts.BarData, len(rows))
	for i, row := range rows {
		labels[i] = row.Country
		values[i] = opts.BarData{Value: row.Races}
	}
	return horizontalBar("Races by Country", "races", labels, values)
}
