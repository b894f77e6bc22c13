// Fleet-wide aggregate computations. Everything here is pure: callers
// load the records and pass them in, results are recomputed per call and
// never cached or written back.

package stats

import (
	"time"

	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/model"
)

// PlaceholderEfficiencyRating stands in for a real fleet efficiency
// metric until historical consumption data exists to compute one.
const PlaceholderEfficiencyRating = 7.5

// Synthetic performance history shape.
const (
	historyPoints   = 6
	historyMinScore = 5.0
	historyMaxScore = 9.5
)

// DriverSummary holds fleet-wide driver performance aggregates.
type DriverSummary struct {
	AvgSpeedScore   float64       `json:"avg_speed_score"`
	AvgBrakingScore float64       `json:"avg_braking_score"`
	SafetyIndex     float64       `json:"safety_index"`
	TopDriver       *model.Driver `json:"top_driver,omitempty"`
}

// MonthlyFuelStats holds fuel aggregates for one calendar month.
type MonthlyFuelStats struct {
	TotalFuelConsumption float64 `json:"total_fuel_consumption"`
	TotalFuelCost        float64 `json:"total_fuel_cost"`
	AvgConsumption       float64 `json:"avg_consumption"`
	EfficiencyRating     float64 `json:"efficiency_rating"`
}

// SummarizeDrivers computes the average speed and braking scores, the
// safety index (mean of the derived safety ratings) and the top driver
// by performance rating. Ties keep the first driver encountered. All
// averages are 0 on empty input.
func SummarizeDrivers(drivers []model.Driver) DriverSummary {
	var s DriverSummary
	if len(drivers) == 0 {
		return s
	}

	var speedSum, brakingSum, safetySum float64
	top := 0
	for i, d := range drivers {
		speedSum += d.SpeedScore
		brakingSum += d.BrakingScore
		safetySum += d.SafetyRating()
		if d.PerformanceRating > drivers[top].PerformanceRating {
			top = i
		}
	}

	n := float64(len(drivers))
	s.AvgSpeedScore = speedSum / n
	s.AvgBrakingScore = brakingSum / n
	s.SafetyIndex = safetySum / n
	s.TopDriver = &drivers[top]
	return s
}

// MonthStart returns the first instant of now's calendar month in UTC.
// Month boundaries are fixed to UTC fleet-wide.
func MonthStart(now time.Time) time.Time {
	now = now.UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthlyFuel sums quantity and cost over the records dated on or after
// the start of now's month and averages consumption over the fleet size.
// AvgConsumption is 0 when the fleet is empty.
func MonthlyFuel(records []model.FuelRecord, vehicleCount int, now time.Time) MonthlyFuelStats {
	start := MonthStart(now)

	s := MonthlyFuelStats{EfficiencyRating: PlaceholderEfficiencyRating}
	for _, r := range records {
		if r.Date.Before(start) {
			continue
		}
		s.TotalFuelConsumption += r.Quantity
		s.TotalFuelCost += r.Cost
	}
	if vehicleCount > 0 {
		s.AvgConsumption = s.TotalFuelConsumption / float64(vehicleCount)
	}
	return s
}

// PerformanceHistory synthesizes a six-month score trend for a driver
// from the current rating: point i is rating + i/10 - 0.3 clamped to
// [5.0, 9.5], labeled with the months from five back through current.
// Deterministic placeholder until real time-series storage exists.
func PerformanceHistory(name string, rating float64, now time.Time) model.DriverPerformanceHistory {
	h := model.DriverPerformanceHistory{
		Name:          name,
		CurrentRating: rating,
		Dates:         make([]string, 0, historyPoints),
		Scores:        make([]float64, 0, historyPoints),
	}

	now = now.UTC()
	for x := historyPoints - 1; x >= 0; x-- {
		h.Dates = append(h.Dates, now.AddDate(0, 0, -x*30).Format("2006-01"))
	}
	for i := 0; i < historyPoints; i++ {
		score := rating + float64(i)/10 - 0.3
		if score < historyMinScore {
			score = historyMinScore
		}
		if score > historyMaxScore {
			score = historyMaxScore
		}
		h.Scores = append(h.Scores, score)
	}
	return h
}
