// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package database

import (
	"context"
	"math"
	"testing"

	"github.com/paddocklab/gridline/internal/config"
	"github.com/paddocklab/gridline/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Path:      ":memory:",
		MaxMemory: "256MB",
		Threads:   1,
	}
	db, err := New(cfg)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})
	return db
}

// seedTestData loads a small but complete set of fixture rows.
//
// Three circuits (Spa hosts no race, so it only shows up as a zero-count
// map marker), three races across 2020 and 2021, two drivers, two
// constructors. One pit stop (400 s) and one lap (200 s) sit outside the
// plausibility windows on purpose.
func seedTestData(t *testing.T, db *DB) {
	t.Helper()
	ctx := context.Background()

	exec := func(query string, args ...interface{}) {
		t.Helper()
		if _, err := db.Conn().ExecContext(ctx, query, args...); err != nil {
			t.Fatalf("Failed to seed test data: %v", err)
		}
	}

	exec(`INSERT INTO circuits (circuit_id, name, location, country, lat, lng) VALUES
		(1, 'Autodromo Nazionale di Monza', 'Monza', 'Italy', 45.6156, 9.2811),
		(2, 'Silverstone Circuit', 'Silverstone', 'UK', 52.0786, -1.0169),
		(3, 'Circuit de Spa-Francorchamps', 'Spa', 'Belgium', 50.4372, 5.9714)`)

	exec(`INSERT INTO races (race_id, year, circuit_id, name) VALUES
		(101, 2020, 1, 'Italian Grand Prix'),
		(102, 2021, 1, 'Italian Grand Prix'),
		(103, 2021, 2, 'British Grand Prix')`)

	exec(`INSERT INTO drivers (driver_id, forename, surname, full_name) VALUES
		(1, 'Max', 'Verstappen', 'Max Verstappen'),
		(2, 'Lewis', 'Hamilton', 'Lewis Hamilton')`)

	exec(`INSERT INTO constructors (constructor_id, name) VALUES
		(1, 'Red Bull'),
		(2, 'Mercedes')`)

	exec(`INSERT INTO pit_stops (race_id, driver_id, stop, lap, duration) VALUES
		(101, 1, 1, 20, 2.5),
		(101, 2, 1, 21, 3.0),
		(102, 1, 1, 18, 2.2),
		(102, 1, 2, 40, 400.0),
		(103, 2, 1, 25, 22.0)`)

	exec(`INSERT INTO results (race_id, driver_id, constructor_id, grid, position, points) VALUES
		(101, 1, 1, 1, 1, 25),
		(101, 2, 2, 3, 2, 18),
		(102, 1, 1, 2, 1, 25),
		(102, 2, 2, 1, 3, 15),
		(103, 2, 2, 1, 1, 25),
		(103, 1, 1, 5, 2, 18)`)

	exec(`INSERT INTO qualifying (race_id, driver_id, position) VALUES
		(101, 1, 1),
		(101, 2, 3),
		(102, 1, 2),
		(102, 2, 1),
		(103, 2, 1),
		(103, 1, 5)`)

	exec(`INSERT INTO lap_times (race_id, driver_id, lap, position, milliseconds) VALUES
		(101, 1, 1, 1, 90000),
		(101, 1, 2, 1, 85000),
		(101, 2, 1, 2, 95000),
		(102, 1, 1, 1, 80000),
		(103, 2, 1, 1, 200000),
		(103, 2, 2, 1, 70000)`)
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestGetSeasons(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	seasons, err := db.GetSeasons(context.Background())
	if err != nil {
		t.Fatalf("GetSeasons failed: %v", err)
	}
	if len(seasons) != 2 {
		t.Fatalf("Expected 2 seasons, got %d", len(seasons))
	}
	if seasons[0] != 2021 || seasons[1] != 2020 {
		t.Errorf("Expected seasons [2021 2020], got %v", seasons)
	}
}

func TestGetCountries(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	countries, err := db.GetCountries(context.Background())
	if err != nil {
		t.Fatalf("GetCountries failed: %v", err)
	}
	want := []string{"Belgium", "Italy", "UK"}
	if len(countries) != len(want) {
		t.Fatalf("Expected %d countries, got %d: %v", len(want), len(countries), countries)
	}
	for i, country := range want {
		if countries[i] != country {
			t.Errorf("Expected countries[%d]=%s, got %s", i, country, countries[i])
		}
	}
}

func TestGetOverview(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)
	ctx := context.Background()

	t.Run("unfiltered", func(t *testing.T) {
		overview, err := db.GetOverview(ctx, StatsFilter{}, nil)
		if err != nil {
			t.Fatalf("GetOverview failed: %v", err)
		}
		if overview.Circuits != 3 {
			t.Errorf("Expected 3 circuits, got %d", overview.Circuits)
		}
		if overview.Races != 3 {
			t.Errorf("Expected 3 races, got %d", overview.Races)
		}
		if overview.Countries != 3 {
			t.Errorf("Expected 3 countries, got %d", overview.Countries)
		}
		if overview.PitStops == nil || *overview.PitStops != 5 {
			t.Errorf("Expected 5 pit stops, got %v", overview.PitStops)
		}
		if overview.Results == nil || *overview.Results != 6 {
			t.Errorf("Expected 6 results, got %v", overview.Results)
		}
	})

	t.Run("season filter", func(t *testing.T) {
		overview, err := db.GetOverview(ctx, StatsFilter{Years: []int{2021}}, nil)
		if err != nil {
			t.Fatalf("GetOverview failed: %v", err)
		}
		if overview.Circuits != 2 {
			t.Errorf("Expected 2 circuits for 2021, got %d", overview.Circuits)
		}
		if overview.Races != 2 {
			t.Errorf("Expected 2 races for 2021, got %d", overview.Races)
		}
		if overview.PitStops == nil || *overview.PitStops != 3 {
			t.Errorf("Expected 3 pit stops for 2021, got %v", overview.PitStops)
		}
	})

	t.Run("unavailable datasets are nil", func(t *testing.T) {
		catalog := models.NewCatalog()
		catalog.SetLoaded(models.DatasetCircuits, 3)
		catalog.SetLoaded(models.DatasetRaces, 3)
		catalog.SetFailed(models.DatasetPitStops, context.Canceled)
		catalog.SetLoaded(models.DatasetResults, 6)

		overview, err := db.GetOverview(ctx, StatsFilter{}, catalog)
		if err != nil {
			t.Fatalf("GetOverview failed: %v", err)
		}
		if overview.PitStops != nil {
			t.Errorf("Expected nil pit stop count, got %d", *overview.PitStops)
		}
		if overview.Results == nil {
			t.Error("Expected results count to be present")
		}
	})
}

func TestGetCircuitMap(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)
	ctx := context.Background()

	t.Run("unfiltered", func(t *testing.T) {
		points, err := db.GetCircuitMap(ctx, StatsFilter{})
		if err != nil {
			t.Fatalf("GetCircuitMap failed: %v", err)
		}
		if len(points) != 3 {
			t.Fatalf("Expected 3 map points, got %d", len(points))
		}
		// Monza has two races and must sort first.
		if points[0].CircuitID != 1 || points[0].RaceCount != 2 {
			t.Errorf("Expected Monza first with 2 races, got %+v", points[0])
		}
	})

	t.Run("season filter keeps zero-count circuits", func(t *testing.T) {
		points, err := db.GetCircuitMap(ctx, StatsFilter{Years: []int{2021}})
		if err != nil {
			t.Fatalf("GetCircuitMap failed: %v", err)
		}
		if len(points) != 3 {
			t.Fatalf("Expected all 3 circuits on the map, got %d", len(points))
		}
		counts := make(map[int64]int64, len(points))
		for _, p := range points {
			counts[p.CircuitID] = p.RaceCount
		}
		if counts[1] != 1 || counts[2] != 1 || counts[3] != 0 {
			t.Errorf("Unexpected race counts: %v", counts)
		}
	})

	t.Run("country filter drops other circuits", func(t *testing.T) {
		points, err := db.GetCircuitMap(ctx, StatsFilter{Countries: []string{"Italy"}})
		if err != nil {
			t.Fatalf("GetCircuitMap failed: %v", err)
		}
		if len(points) != 1 || points[0].Country != "Italy" {
			t.Fatalf("Expected only the Italian circuit, got %+v", points)
		}
	})
}

func TestGetTopCircuits(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	circuits, err := db.GetTopCircuits(context.Background(), StatsFilter{}, 1)
	if err != nil {
		t.Fatalf("GetTopCircuits failed: %v", err)
	}
	if len(circuits) != 1 {
		t.Fatalf("Expected limit to cap results at 1, got %d", len(circuits))
	}
	if circuits[0].Circuit != "Autodromo Nazionale di Monza" || circuits[0].Races != 2 {
		t.Errorf("Unexpected top circuit: %+v", circuits[0])
	}
}

func TestGetRacesByCountry(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	rows, err := db.GetRacesByCountry(context.Background(), StatsFilter{}, 0)
	if err != nil {
		t.Fatalf("GetRacesByCountry failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 countries with races, got %d", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].Races > rows[i-1].Races {
			t.Errorf("Expected non-increasing race counts, got %+v", rows)
		}
	}
	if rows[0].Country != "Italy" || rows[0].Races != 2 {
		t.Errorf("Expected Italy first with 2 races, got %+v", rows[0])
	}
}

func TestGetPitStopSummary(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)
	ctx := context.Background()

	t.Run("excludes outliers", func(t *testing.T) {
		summary, err := db.GetPitStopSummary(ctx, StatsFilter{})
		if err != nil {
			t.Fatalf("GetPitStopSummary failed: %v", err)
		}
		// The 400 s stop is outside the plausibility window.
		if summary.TotalStops != 4 {
			t.Errorf("Expected 4 stops, got %d", summary.TotalStops)
		}
		if !approxEqual(summary.FastestDuration, 2.2) {
			t.Errorf("Expected fastest 2.2, got %v", summary.FastestDuration)
		}
		if !approxEqual(summary.AvgDuration, (2.5+3.0+2.2+22.0)/4) {
			t.Errorf("Unexpected average duration %v", summary.AvgDuration)
		}
		if !approxEqual(summary.StopsPerRace, 4.0/3.0) {
			t.Errorf("Expected 4/3 stops per race, got %v", summary.StopsPerRace)
		}
	})

	t.Run("season filter", func(t *testing.T) {
		summary, err := db.GetPitStopSummary(ctx, StatsFilter{Years: []int{2021}})
		if err != nil {
			t.Fatalf("GetPitStopSummary failed: %v", err)
		}
		if summary.TotalStops != 2 {
			t.Errorf("Expected 2 stops for 2021, got %d", summary.TotalStops)
		}
		if !approxEqual(summary.StopsPerRace, 1.0) {
			t.Errorf("Expected 1 stop per race for 2021, got %v", summary.StopsPerRace)
		}
	})

	t.Run("empty selection", func(t *testing.T) {
		summary, err := db.GetPitStopSummary(ctx, StatsFilter{Years: []int{1999}})
		if err != nil {
			t.Fatalf("GetPitStopSummary failed: %v", err)
		}
		if summary.TotalStops != 0 || summary.StopsPerRace != 0 {
			t.Errorf("Expected zeroed summary, got %+v", summary)
		}
	})
}

func TestGetPitStopDistribution(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	bins, err := db.GetPitStopDistribution(context.Background(), StatsFilter{}, 1.0)
	if err != nil {
		t.Fatalf("GetPitStopDistribution failed: %v", err)
	}
	got := make(map[float64]int64, len(bins))
	var total int64
	for _, b := range bins {
		got[b.Bin] = b.Count
		total += b.Count
	}
	// 2.5 and 2.2 share the [2,3) bucket; the 400 s stop is out of range.
	if got[2] != 2 || got[3] != 1 || got[22] != 1 {
		t.Errorf("Unexpected bins: %v", got)
	}
	if total != 4 {
		t.Errorf("Expected 4 binned stops, got %d", total)
	}
}

func TestGetStopNumberCounts(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	counts, err := db.GetStopNumberCounts(context.Background(), StatsFilter{})
	if err != nil {
		t.Fatalf("GetStopNumberCounts failed: %v", err)
	}
	if len(counts) != 2 {
		t.Fatalf("Expected stop numbers 1 and 2, got %+v", counts)
	}
	if counts[0].Stop != 1 || counts[0].Count != 4 {
		t.Errorf("Expected 4 first stops, got %+v", counts[0])
	}
	if counts[1].Stop != 2 || counts[1].Count != 1 {
		t.Errorf("Expected 1 second stop, got %+v", counts[1])
	}
}

func TestGetFastestPitStops(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	stops, err := db.GetFastestPitStops(context.Background(), StatsFilter{}, 2)
	if err != nil {
		t.Fatalf("GetFastestPitStops failed: %v", err)
	}
	if len(stops) != 2 {
		t.Fatalf("Expected 2 stops, got %d", len(stops))
	}
	if !approxEqual(stops[0].Duration, 2.2) || stops[0].Driver != "Max Verstappen" {
		t.Errorf("Unexpected fastest stop: %+v", stops[0])
	}
	if stops[1].Duration < stops[0].Duration {
		t.Errorf("Expected ascending durations, got %+v", stops)
	}
}

func TestGetPerformanceSummary(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	summary, err := db.GetPerformanceSummary(context.Background(), StatsFilter{})
	if err != nil {
		t.Fatalf("GetPerformanceSummary failed: %v", err)
	}
	if summary.Results != 6 {
		t.Errorf("Expected 6 results, got %d", summary.Results)
	}
	if !approxEqual(summary.TotalPoints, 126) {
		t.Errorf("Expected 126 points, got %v", summary.TotalPoints)
	}
	if summary.Winners != 2 {
		t.Errorf("Expected 2 distinct winners, got %d", summary.Winners)
	}
	if summary.Constructors != 2 {
		t.Errorf("Expected 2 constructors, got %d", summary.Constructors)
	}
}

func TestGetTopConstructors(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)
	ctx := context.Background()

	rows, err := db.GetTopConstructors(ctx, StatsFilter{}, 10)
	if err != nil {
		t.Fatalf("GetTopConstructors failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Expected 2 constructors, got %d", len(rows))
	}
	if rows[0].Constructor != "Red Bull" || !approxEqual(rows[0].Points, 68) {
		t.Errorf("Unexpected leader: %+v", rows[0])
	}
	if rows[1].Constructor != "Mercedes" || !approxEqual(rows[1].Points, 58) {
		t.Errorf("Unexpected runner-up: %+v", rows[1])
	}

	// A season filter must yield a subset of the unfiltered points.
	filtered, err := db.GetTopConstructors(ctx, StatsFilter{Years: []int{2021}}, 10)
	if err != nil {
		t.Fatalf("GetTopConstructors failed: %v", err)
	}
	for _, row := range filtered {
		var full float64
		for _, all := range rows {
			if all.Constructor == row.Constructor {
				full = all.Points
			}
		}
		if row.Points > full {
			t.Errorf("Filtered points %v exceed unfiltered %v for %s", row.Points, full, row.Constructor)
		}
	}
}

func TestGetPositionDistribution(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	positions, err := db.GetPositionDistribution(context.Background(), StatsFilter{}, 10)
	if err != nil {
		t.Fatalf("GetPositionDistribution failed: %v", err)
	}
	got := make(map[int]int64, len(positions))
	for _, p := range positions {
		got[p.Position] = p.Count
	}
	if got[1] != 3 || got[2] != 2 || got[3] != 1 {
		t.Errorf("Unexpected position counts: %v", got)
	}
}

func TestGetQualifyingSummary(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	summary, err := db.GetQualifyingSummary(context.Background(), StatsFilter{})
	if err != nil {
		t.Fatalf("GetQualifyingSummary failed: %v", err)
	}
	if summary.Rows != 6 {
		t.Errorf("Expected 6 joined rows, got %d", summary.Rows)
	}
	if !approxEqual(summary.AvgChange, 0.5) {
		t.Errorf("Expected average change 0.5, got %v", summary.AvgChange)
	}
	if summary.BestGain != 3 {
		t.Errorf("Expected best gain 3, got %d", summary.BestGain)
	}
	if summary.WorstLoss != -2 {
		t.Errorf("Expected worst loss -2, got %d", summary.WorstLoss)
	}
	if !approxEqual(summary.ImproverPct, 50.0) {
		t.Errorf("Expected 50%% improvers, got %v", summary.ImproverPct)
	}
}

func TestGetPositionChangeDistribution(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	bins, err := db.GetPositionChangeDistribution(context.Background(), StatsFilter{})
	if err != nil {
		t.Fatalf("GetPositionChangeDistribution failed: %v", err)
	}
	got := make(map[int]int64, len(bins))
	for _, b := range bins {
		got[b.Change] = b.Count
	}
	if got[-2] != 1 || got[0] != 2 || got[1] != 2 || got[3] != 1 {
		t.Errorf("Unexpected change bins: %v", got)
	}
	for i := 1; i < len(bins); i++ {
		if bins[i].Change <= bins[i-1].Change {
			t.Errorf("Expected ascending bins, got %+v", bins)
		}
	}
}

func TestGetGridConversion(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)
	ctx := context.Background()

	points, err := db.GetGridConversion(ctx, StatsFilter{}, 0)
	if err != nil {
		t.Fatalf("GetGridConversion failed: %v", err)
	}
	if len(points) != 6 {
		t.Fatalf("Expected 6 conversion points, got %d", len(points))
	}

	capped, err := db.GetGridConversion(ctx, StatsFilter{}, 4)
	if err != nil {
		t.Fatalf("GetGridConversion failed: %v", err)
	}
	if len(capped) != 4 {
		t.Errorf("Expected the sample limit to cap points at 4, got %d", len(capped))
	}
}

func TestGetTopGainers(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	gainers, err := db.GetTopGainers(context.Background(), StatsFilter{}, 3)
	if err != nil {
		t.Fatalf("GetTopGainers failed: %v", err)
	}
	if len(gainers) != 3 {
		t.Fatalf("Expected 3 gainers, got %d", len(gainers))
	}
	if gainers[0].Driver != "Max Verstappen" || gainers[0].Gained != 3 {
		t.Errorf("Unexpected top gainer: %+v", gainers[0])
	}
	for i := 1; i < len(gainers); i++ {
		if gainers[i].Gained > gainers[i-1].Gained {
			t.Errorf("Expected non-increasing gains, got %+v", gainers)
		}
	}
}

func TestGetLapSummary(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	summary, err := db.GetLapSummary(context.Background(), StatsFilter{})
	if err != nil {
		t.Fatalf("GetLapSummary failed: %v", err)
	}
	// The 200 s lap is outside the plausibility window.
	if summary.TotalLaps != 5 {
		t.Errorf("Expected 5 laps, got %d", summary.TotalLaps)
	}
	if !approxEqual(summary.FastestSeconds, 70.0) {
		t.Errorf("Expected fastest lap 70 s, got %v", summary.FastestSeconds)
	}
	if !approxEqual(summary.AvgSeconds, 84.0) {
		t.Errorf("Expected average 84 s, got %v", summary.AvgSeconds)
	}
	if summary.Drivers != 2 {
		t.Errorf("Expected 2 drivers, got %d", summary.Drivers)
	}
}

func TestGetLapTimeDistribution(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	bins, err := db.GetLapTimeDistribution(context.Background(), StatsFilter{}, 10.0)
	if err != nil {
		t.Fatalf("GetLapTimeDistribution failed: %v", err)
	}
	got := make(map[float64]int64, len(bins))
	var total int64
	for _, b := range bins {
		got[b.Bin] = b.Count
		total += b.Count
	}
	if got[70] != 1 || got[80] != 2 || got[90] != 2 {
		t.Errorf("Unexpected lap time bins: %v", got)
	}
	if total != 5 {
		t.Errorf("Expected 5 binned laps, got %d", total)
	}
}

func TestGetLapTimeEvolution(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	points, err := db.GetLapTimeEvolution(context.Background(), StatsFilter{})
	if err != nil {
		t.Fatalf("GetLapTimeEvolution failed: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("Expected 2 lap points, got %d", len(points))
	}
	if points[0].Lap != 1 || !approxEqual(points[0].Seconds, 90.0) {
		t.Errorf("Expected lap 1 median 90 s, got %+v", points[0])
	}
	if points[1].Lap != 2 || !approxEqual(points[1].Seconds, 77.5) {
		t.Errorf("Expected lap 2 median 77.5 s, got %+v", points[1])
	}
}

func TestGetFastestLaps(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)

	laps, err := db.GetFastestLaps(context.Background(), StatsFilter{}, 2)
	if err != nil {
		t.Fatalf("GetFastestLaps failed: %v", err)
	}
	if len(laps) != 2 {
		t.Fatalf("Expected 2 laps, got %d", len(laps))
	}
	if !approxEqual(laps[0].Seconds, 70.0) || laps[0].Driver != "Lewis Hamilton" {
		t.Errorf("Unexpected fastest lap: %+v", laps[0])
	}
	if !approxEqual(laps[1].Seconds, 80.0) {
		t.Errorf("Expected second fastest 80 s, got %+v", laps[1])
	}
}

// Season and country filters must agree: filtering by every season of a
// country equals filtering by the country itself for race-derived counts.
func TestFilterConsistency(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)
	ctx := context.Background()

	byCountry, err := db.GetTopCircuits(ctx, StatsFilter{Countries: []string{"Italy"}}, 10)
	if err != nil {
		t.Fatalf("GetTopCircuits failed: %v", err)
	}
	byBoth, err := db.GetTopCircuits(ctx, StatsFilter{Years: []int{2020, 2021}, Countries: []string{"Italy"}}, 10)
	if err != nil {
		t.Fatalf("GetTopCircuits failed: %v", err)
	}
	if len(byCountry) != len(byBoth) {
		t.Fatalf("Expected identical rankings, got %d vs %d rows", len(byCountry), len(byBoth))
	}
	for i := range byCountry {
		if byCountry[i] != byBoth[i] {
			t.Errorf("Ranking mismatch at %d: %+v vs %+v", i, byCountry[i], byBoth[i])
		}
	}
}

func TestTruncateAll(t *testing.T) {
	db := setupTestDB(t)
	seedTestData(t, db)
	ctx := context.Background()

	if err := db.TruncateAll(ctx); err != nil {
		t.Fatalf("TruncateAll failed: %v", err)
	}
	seasons, err := db.GetSeasons(ctx)
	if err != nil {
		t.Fatalf("GetSeasons failed: %v", err)
	}
	if len(seasons) != 0 {
		t.Errorf("Expected no seasons after truncate, got %v", seasons)
	}
}
