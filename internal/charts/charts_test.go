// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package charts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/paddocklab/gridline/internal/models"
)

func TestCircuitMapRenders(t *testing.T) {
	geo := CircuitMap([]models.CircuitMapPoint{
		{CircuitID: 1, Name: "Monza", Country: "Italy", Lat: 45.6156, Lng: 9.2811, RaceCount: 70},
		{CircuitID: 2, Name: "Silverstone", Country: "UK", Lat: 52.0786, Lng: -1.0169, RaceCount: 55},
	})

	var buf bytes.Buffer
	if err := geo.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, "Monza") {
		t.Error("Expected circuit name in rendered output")
	}
	if !strings.Contains(html, "world") {
		t.Error("Expected world map in rendered output")
	}
}

func TestHorizontalBarReversesRows(t *testing.T) {
	bar := TopCircuitsBar([]models.CircuitRaceCount{
		{Circuit: "Monza", Races: 70},
		{Circuit: "Spa", Races: 55},
	})

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	html := buf.String()
	// Category axes draw bottom-up; the leader must be last in the axis
	// data so it ends up on top.
	if strings.Index(html, "Spa") > strings.Index(html, "Monza") {
		t.Error("Expected the leader to be the last category")
	}
}

func TestGridConversionScatterRenders(t *testing.T) {
	scatter := GridConversionScatter([]models.GridConversionPoint{
		{QualiPosition: 1, RacePosition: 1},
		{QualiPosition: 5, RacePosition: 2},
	})

	var buf bytes.Buffer
	if err := scatter.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Qualifying") {
		t.Error("Expected axis name in rendered output")
	}
}

func TestDashboardOmitsUnavailableSections(t *testing.T) {
	var buf bytes.Buffer
	err := RenderDashboard(&buf, DashboardData{
		CircuitMap: []models.CircuitMapPoint{
			{CircuitID: 1, Name: "Monza", Country: "Italy", Lat: 45.6, Lng: 9.28, RaceCount: 1},
		},
		TopCircuits: []models.CircuitRaceCount{{Circuit: "Monza", Races: 1}},
	})
	if err != nil {
		t.Fatalf("RenderDashboard failed: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, "Circuits of the World") {
		t.Error("Expected circuit map section")
	}
	if strings.Contains(html, "Pit Stop Durations") {
		t.Error("Expected pit stop section to be omitted")
	}
}

func TestHistogramLabels(t *testing.T) {
	bar := PitStopHistogram([]models.DurationBin{
		{Bin: 2, Count: 10},
		{Bin: 2.5, Count: 7},
	})

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "2.5s") {
		t.Error("Expected bin label with unit")
	}
}
