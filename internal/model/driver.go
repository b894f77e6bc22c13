package model

import (
	"time"
)

// Weights of the safety rating blend.
const (
	speedWeight   = 0.6
	brakingWeight = 0.4
)

// Driver represents a fleet operator
type Driver struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Name              string    `json:"name" gorm:"size:80;not null"`
	LicenseNumber     string    `json:"license_number" gorm:"column:license_number;uniqueIndex;size:50"`
	PerformanceRating float64   `json:"performance_rating" gorm:"column:performance_rating;default:7"`
	SpeedScore        float64   `json:"speed_score" gorm:"column:speed_score;default:7"`
	BrakingScore      float64   `json:"braking_score" gorm:"column:braking_score;default:7"`
	VehicleID         *uint     `json:"vehicle_id,omitempty" gorm:"column:vehicle_id"` // no exclusivity: several drivers may share a vehicle
	CreatedAt         time.Time `json:"created_at" gorm:"not null;default:now()"`
	UpdatedAt         time.Time `json:"updated_at" gorm:"not null;default:now()"`

	FuelRecords []FuelRecord `json:"fuel_records,omitempty" gorm:"foreignKey:DriverID"`
}

func (Driver) TableName() string {
	return "drivers"
}

// SafetyRating is the weighted blend of the driver's speed and braking
// scores. Derived on demand, never stored.
func (d Driver) SafetyRating() float64 {
	return d.SpeedScore*speedWeight + d.BrakingScore*brakingWeight
}

// CreateDriverRequest creates a driver
type CreateDriverRequest struct {
	Name          string   `json:"name" form:"name" binding:"required"`
	LicenseNumber string   `json:"license_number" form:"license_number" binding:"required"`
	VehicleID     *uint    `json:"vehicle_id" form:"vehicle_id"`
	SpeedScore    *float64 `json:"speed_score" form:"speed_score"`
	BrakingScore  *float64 `json:"braking_score" form:"braking_score"`
}

// UpdateDriverRequest updates a driver
type UpdateDriverRequest struct {
	Name              string   `json:"name" form:"name"`
	LicenseNumber     string   `json:"license_number" form:"license_number"`
	VehicleID         *uint    `json:"vehicle_id" form:"vehicle_id"`
	PerformanceRating *float64 `json:"performance_rating" form:"performance_rating"`
	SpeedScore        *float64 `json:"speed_score" form:"speed_score"`
	BrakingScore      *float64 `json:"braking_score" form:"braking_score"`
}

// DriverView is a driver plus the derived safety fields the dashboard shows
type DriverView struct {
	Driver
	SafetyRating float64 `json:"safety_rating"`
	SafetyBadge  string  `json:"safety_badge"`
}

// DriverPerformanceHistory is the synthetic six-month trend returned by
// the driver performance API. The scores are derived from the current
// rating, not real history.
type DriverPerformanceHistory struct {
	Name          string    `json:"name"`
	CurrentRating float64   `json:"current_rating"`
	Dates         []string  `json:"dates"`
	Scores        []float64 `json:"scores"`
}
