// Gridline - Historical Motorsport Statistics Dashboard
// Copyright 2026 Paddock Lab
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/paddocklab/gridline

package models

// Overview holds the headline counts shown at the top of the dashboard.
// PitStops and Results are nil when the corresponding optional dataset
// did not load; the UI renders "N/A" for them.
type Overview struct {
	Circuits  int64  `json:"circuits"`
	Races     int64  `json:"races"`
	PitStops  *int64 `json:"pit_stops,omitempty"`
	Results   *int64 `json:"results,omitempty"`
	Countries int64  `json:"countries"`
}

// FilterOptions lists the values selectable in the sidebar filters.
type FilterOptions struct {
	Seasons   []int    `json:"seasons"`
	Countries []string `json:"countries"`
}

// CircuitMapPoint is one circuit marker on the world map, sized by the
// number of races held there under the active filter.
type CircuitMapPoint struct {
	CircuitID int64   `json:"circuit_id"`
	Name      string  `json:"name"`
	Location  string  `json:"location"`
	Country   string  `json:"country"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	RaceCount int64   `json:"race_count"`
}

// CircuitRaceCount is a races-per-circuit ranking row.
type CircuitRaceCount struct {
	Circuit string `json:"circuit"`
	Races   int64  `json:"races"`
}

// CountryRaceCount is a races-per-country ranking row.
type CountryRaceCount struct {
	Country string `json:"country"`
	Races   int64  `json:"races"`
}

// PitStopSummary holds the pit stop headline metrics. Durations are in
// seconds and exclude outliers (non-positive or >= 300 s stops).
type PitStopSummary struct {
	AvgDuration     float64 `json:"avg_duration"`
	FastestDuration float64 `json:"fastest_duration"`
	TotalStops      int64   `json:"total_stops"`
	StopsPerRace    float64 `json:"stops_per_race"`
}

// DurationBin is one histogram bucket of pit stop durations.
// Bin is the inclusive lower bound of the bucket in seconds.
type DurationBin struct {
	Bin   float64 `json:"bin"`
	Count int64   `json:"count"`
}

// StopNumberCount counts stops by stop number (1st stop, 2nd stop, ...).
type StopNumberCount struct {
	Stop  int   `json:"stop"`
	Count int64 `json:"count"`
}

// PitStop is one pit stop row with race and driver context resolved where
// the optional drivers dataset is available (Driver is empty otherwise).
type PitStop struct {
	RaceID   int64   `json:"race_id"`
	DriverID int64   `json:"driver_id"`
	Driver   string  `json:"driver,omitempty"`
	Race     string  `json:"race"`
	Year     int     `json:"year"`
	Stop     int     `json:"stop"`
	Lap      int     `json:"lap"`
	Duration float64 `json:"duration"`
}

// PerformanceSummary holds the results headline metrics.
type PerformanceSummary struct {
	Results      int64   `json:"results"`
	TotalPoints  float64 `json:"total_points"`
	Winners      int64   `json:"winners"`
	Constructors int64   `json:"constructors"`
}

// ConstructorPoints is a points-per-constructor ranking row.
type ConstructorPoints struct {
	Constructor string  `json:"constructor"`
	Points      float64 `json:"points"`
}

// PositionCount counts results by finishing position.
type PositionCount struct {
	Position int   `json:"position"`
	Count    int64 `json:"count"`
}

// QualifyingSummary compares grid positions with race results.
// A positive change means places gained from qualifying to race finish.
type QualifyingSummary struct {
	AvgChange   float64 `json:"avg_change"`
	BestGain    int     `json:"best_gain"`
	WorstLoss   int     `json:"worst_loss"`
	ImproverPct float64 `json:"improver_pct"`
	Rows        int64   `json:"rows"`
}

// PositionChangeBin is one histogram bucket of position changes.
type PositionChangeBin struct {
	Change int   `json:"change"`
	Count  int64 `json:"count"`
}

// GridConversionPoint is one (qualifying position, race position) pair for
// the conversion scatter plot.
type GridConversionPoint struct {
	QualiPosition int `json:"quali_position"`
	RacePosition  int `json:"race_position"`
}

// PositionGainer is one row of the top-gainers table.
type PositionGainer struct {
	RaceID        int64   `json:"race_id"`
	DriverID      int64   `json:"driver_id"`
	Driver        string  `json:"driver,omitempty"`
	Race          string  `json:"race"`
	Year          int     `json:"year"`
	QualiPosition int     `json:"quali_position"`
	RacePosition  int     `json:"race_position"`
	Gained        int     `json:"gained"`
	Points        float64 `json:"points"`
}

// LapSummary holds the lap time headline metrics. Times are in seconds.
type LapSummary struct {
	TotalLaps      int64   `json:"total_laps"`
	FastestSeconds float64 `json:"fastest_seconds"`
	AvgSeconds     float64 `json:"avg_seconds"`
	Drivers        int64   `json:"drivers"`
}

// LapTimeBin is one histogram bucket of lap times in seconds.
type LapTimeBin struct {
	Bin   float64 `json:"bin"`
	Count int64   `json:"count"`
}

// LapPoint is one (lap number, lap time) sample for the evolution scatter.
type LapPoint struct {
	Lap     int     `json:"lap"`
	Seconds float64 `json:"seconds"`
}

// FastestLap is one row of the fastest-laps table.
type FastestLap struct {
	RaceID   int64   `json:"race_id"`
	DriverID int64   `json:"driver_id"`
	Driver   string  `json:"driver,omitempty"`
	Race     string  `json:"race"`
	Year     int     `json:"year"`
	Lap      int     `json:"lap"`
	Position int     `json:"position"`
	Seconds  float64 `json:"seconds"`
}
