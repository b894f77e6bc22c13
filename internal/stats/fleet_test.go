package stats

import (
	"math"
	"testing"
	"time"

	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/model"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSummarizeDriversEmpty(t *testing.T) {
	s := SummarizeDrivers(nil)
	if s.AvgSpeedScore != 0 || s.AvgBrakingScore != 0 || s.SafetyIndex != 0 {
		t.Fatalf("expected zero summary for empty input, got %+v", s)
	}
	if s.TopDriver != nil {
		t.Fatalf("expected nil top driver for empty input")
	}
}

func TestSummarizeDrivers(t *testing.T) {
	drivers := []model.Driver{
		{ID: 1, Name: "A", SpeedScore: 8, BrakingScore: 6, PerformanceRating: 7},
		{ID: 2, Name: "B", SpeedScore: 6, BrakingScore: 8, PerformanceRating: 9},
		{ID: 3, Name: "C", SpeedScore: 7, BrakingScore: 7, PerformanceRating: 9}, // tie, B stays on top
	}

	s := SummarizeDrivers(drivers)

	if !almostEqual(s.AvgSpeedScore, 7) {
		t.Errorf("AvgSpeedScore = %v, want 7", s.AvgSpeedScore)
	}
	if !almostEqual(s.AvgBrakingScore, 7) {
		t.Errorf("AvgBrakingScore = %v, want 7", s.AvgBrakingScore)
	}
	// safety ratings: 8*0.6+6*0.4=7.2, 6*0.6+8*0.4=6.8, 7.0 -> mean 7.0
	if !almostEqual(s.SafetyIndex, 7) {
		t.Errorf("SafetyIndex = %v, want 7", s.SafetyIndex)
	}
	if s.TopDriver == nil || s.TopDriver.ID != 2 {
		t.Errorf("TopDriver = %+v, want driver 2 (first-encountered tie winner)", s.TopDriver)
	}
}

func TestMonthStart(t *testing.T) {
	now := time.Date(2024, 3, 17, 15, 42, 7, 0, time.UTC)
	want := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := MonthStart(now); !got.Equal(want) {
		t.Fatalf("MonthStart = %v, want %v", got, want)
	}
}

func TestMonthlyFuel(t *testing.T) {
	now := time.Date(2024, 3, 17, 12, 0, 0, 0, time.UTC)
	records := []model.FuelRecord{
		{Quantity: 30, Cost: 90, Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)},
		{Quantity: 20, Cost: 60, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},  // month start inclusive
		{Quantity: 99, Cost: 99, Date: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)}, // previous month
	}

	s := MonthlyFuel(records, 2, now)

	if !almostEqual(s.TotalFuelConsumption, 50) {
		t.Errorf("TotalFuelConsumption = %v, want 50", s.TotalFuelConsumption)
	}
	if !almostEqual(s.TotalFuelCost, 150) {
		t.Errorf("TotalFuelCost = %v, want 150", s.TotalFuelCost)
	}
	if !almostEqual(s.AvgConsumption, 25) {
		t.Errorf("AvgConsumption = %v, want 25", s.AvgConsumption)
	}
	if s.EfficiencyRating != PlaceholderEfficiencyRating {
		t.Errorf("EfficiencyRating = %v, want %v", s.EfficiencyRating, PlaceholderEfficiencyRating)
	}
}

func TestMonthlyFuelEmptyFleet(t *testing.T) {
	s := MonthlyFuel(nil, 0, time.Now().UTC())
	if s.AvgConsumption != 0 {
		t.Fatalf("AvgConsumption = %v, want 0 for empty fleet", s.AvgConsumption)
	}
}

func TestPerformanceHistoryScores(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	h := PerformanceHistory("Driver 1", 7.0, now)

	// rating + i/10 - 0.3 for i = 0..5
	want := []float64{6.7, 6.8, 6.9, 7.0, 7.1, 7.2}
	if len(h.Scores) != len(want) {
		t.Fatalf("got %d scores, want %d", len(h.Scores), len(want))
	}
	for i := range want {
		if !almostEqual(h.Scores[i], want[i]) {
			t.Errorf("Scores[%d] = %v, want %v", i, h.Scores[i], want[i])
		}
	}
	if h.Name != "Driver 1" || h.CurrentRating != 7.0 {
		t.Errorf("header = %q/%v, want Driver 1/7.0", h.Name, h.CurrentRating)
	}
}

func TestPerformanceHistoryClamped(t *testing.T) {
	now := time.Now().UTC()

	low := PerformanceHistory("low", 4.0, now)
	for i, s := range low.Scores {
		if s < 5.0 {
			t.Errorf("low Scores[%d] = %v, below clamp floor", i, s)
		}
	}

	high := PerformanceHistory("high", 9.9, now)
	for i, s := range high.Scores {
		if s > 9.5 {
			t.Errorf("high Scores[%d] = %v, above clamp ceiling", i, s)
		}
	}
}

func TestPerformanceHistoryDates(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	h := PerformanceHistory("d", 7.0, now)

	if len(h.Dates) != 6 {
		t.Fatalf("got %d dates, want 6", len(h.Dates))
	}
	if h.Dates[5] != "2024-06" {
		t.Errorf("Dates[5] = %q, want current month 2024-06", h.Dates[5])
	}
	if h.Dates[0] != "2024-01" {
		t.Errorf("Dates[0] = %q, want 2024-01 (150 days back)", h.Dates[0])
	}
}
