// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package charts

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/components"

	"github.com/paddocklab/gridline/internal/models"
)

// DashboardData carries the query results for every dashboard section.
// A nil slice means the backing dataset is unavailable and the section is
// omitted from the page.
type DashboardData struct {
	CircuitMap      []models.CircuitMapPoint
	TopCircuits     []models.CircuitRaceCount
	RacesByCountry  []models.CountryRaceCount
	PitStopBins     []models.DurationBin
	StopNumbers     []models.StopNumberCount
	Constructors    []models.ConstructorPoints
	Positions       []models.PositionCount
	PositionChanges []models.PositionChangeBin
	GridConversion  []models.GridConversionPoint
	LapBins         []models.LapTimeBin
	LapEvolution    []models.LapPoint
}

// Dashboard assembles the full dashboard page from the available
// sections.
func Dashboard(data DashboardData) *components.Page {
	page := components.NewPage()
	page.PageTitle = "Gridline"
	page.SetLayout(components.PageCenterLayout)

	if data.CircuitMap != nil {
		page.AddCharts(CircuitMap(data.CircuitMap))
	}
	if data.TopCircuits != nil {
		page.AddCharts(TopCircuitsBar(data.TopCircuits))
	}
	if data.RacesByCountry != nil {
		page.AddCharts(RacesByCountryBar(data.RacesByCountry))
	}
	if data.PitStopBins != nil {
		page.AddCharts(PitStopHistogram(data.PitStopBins))
	}
	if data.StopNumbers != nil {
		page.AddCharts(StopNumberBar(data.StopNumbers))
	}
	if data.Constructors != nil {
		page.AddCharts(ConstructorPointsBar(data.Constructors))
	}
	if data.Positions != nil {
		page.AddCharts(PositionDistributionBar(data.Positions))
	}
	if data.PositionChanges != nil {
		page.AddCharts(PositionChangeBar(data.PositionChanges))
	}
	if data.GridConversion != nil {
		page.AddCharts(GridConversionScatter(data.GridConversion))
	}
	if data.LapBins != nil {
		page.AddCharts(LapTimeHistogram(data.LapBins))
	}
	if data.LapEvolution != nil {
		page.AddCharts(LapEvolutionLine(data.LapEvolution))
	}

	return page
}

// RenderDashboard renders the assembled page as a standalone HTML
// document.
func RenderDashboard(w io.Writer, data DashboardData) error {
	return Dashboard(data).Render(w)
}
