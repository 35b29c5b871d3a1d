// Package operation
package operation

import (
	"fmt"
	"testing"
)

func TestComputeFlightStatsEmpty(t *testing.T) {
	pass, fail := 0, 0
	testCases := [][]*LogbookEntry{
		nil,
		{},
		{nil, nil},
	}
	for index, entries := range testCases {
		stats := ComputeFlightStats(entries)
		if *stats != (FlightStats{}) {
			t.Errorf("case %d: expected zero stats, got %+v", index, stats)
			fail++
		} else {
			pass++
		}
	}
	t.Logf("TestComputeFlightStatsEmpty: %d pass, %d fail", pass, fail)
}

func TestComputeFlightStatsSum(t *testing.T) {
	entries := []*LogbookEntry{
		{
			TotalDuration:       1.2,
			LandingsDay:         2,
			SimulatedInstrument: 0.3,
			CrossCountry:        1.2,
			PilotInCommand:      1.2,
		},
		nil,
		{
			TotalDuration:  0.8,
			LandingsDay:    1,
			CrossCountry:   0.8,
			PilotInCommand: 0.8,
			Night:          0.5,
			LandingsNight:  1,
		},
	}
	stats := ComputeFlightStats(entries)
	pass, fail := 0, 0
	testCases := []struct {
		name     string
		actual   float64
		expected float64
	}{
		{"totalFlightHours", stats.TotalFlightHours, 2.0},
		{"totalLandings", float64(stats.TotalLandings), 4},
		{"totalNightHours", stats.TotalNightHours, 0.5},
		{"totalInstrumentHours", stats.TotalInstrumentHours, 0.3},
		{"totalCrossCountry", stats.TotalCrossCountry, 2.0},
		{"totalPIC", stats.TotalPIC, 2.0},
		{"totalDual", stats.TotalDual, 0},
		{"totalSolo", stats.TotalSolo, 0},
	}
	for _, testCase := range testCases {
		if diff := testCase.actual - testCase.expected; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("%s: expected %v, got %v", testCase.name, testCase.expected, testCase.actual)
			fail++
		} else {
			pass++
		}
	}
	t.Logf("TestComputeFlightStatsSum: %d pass, %d fail", pass, fail)
}

func TestComputeFlightStatsOrderInvariant(t *testing.T) {
	first := &LogbookEntry{TotalDuration: 1.5, LandingsDay: 3, ActualInstrument: 0.4}
	second := &LogbookEntry{TotalDuration: 2.1, LandingsNight: 2, DualReceived: 2.1}
	third := &LogbookEntry{TotalDuration: 0.6, Solo: 0.6}
	forward := ComputeFlightStats([]*LogbookEntry{first, second, third})
	backward := ComputeFlightStats([]*LogbookEntry{third, second, first})
	if *forward != *backward {
		t.Errorf("stats depend on entry order: %+v != %+v", forward, backward)
	}
}

func ExampleComputeFlightStats() {
	stats := ComputeFlightStats([]*LogbookEntry{
		{TotalDuration: 1.2, LandingsDay: 2, PilotInCommand: 1.2},
		{TotalDuration: 0.8, LandingsDay: 1, PilotInCommand: 0.8},
	})
	fmt.Println(stats.TotalFlightHours)
	fmt.Println(stats.TotalLandings)
	// Output:
	// 2
	// 3
}
