package model

import (
	"time"
)

// Maintenance record lifecycle. A record is created scheduled and moves
// to completed exactly once.
const (
	MaintenanceScheduled = "scheduled"
	MaintenanceCompleted = "completed"
)

// MaintenanceRecord represents one maintenance event on a vehicle
type MaintenanceRecord struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	VehicleID   uint      `json:"vehicle_id" gorm:"column:vehicle_id;not null"`
	Date        time.Time `json:"date" gorm:"not null"`
	Description string    `json:"description" gorm:"size:200"`
	Cost        float64   `json:"cost"`
	Status      string    `json:"status" gorm:"size:50;default:'scheduled'"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;default:now()"`

	Vehicle *Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
}

func (MaintenanceRecord) TableName() string {
	return "maintenance_records"
}

// CreateMaintenanceRequest schedules a maintenance event
type CreateMaintenanceRequest struct {
	VehicleID   uint    `json:"vehicle_id" form:"vehicle_id" binding:"required"`
	Date        string  `json:"date" form:"date" binding:"required"` // 2006-01-02
	Description string  `json:"description" form:"description"`
	Cost        float64 `json:"cost" form:"cost"`
}

// CompleteMaintenanceRequest marks a scheduled event completed
type CompleteMaintenanceRequest struct {
	MaintenanceID uint `json:"maintenance_id" form:"maintenance_id" binding:"required"`
}

// MaintenanceAlert is a scheduled-maintenance entry for the alerts API
type MaintenanceAlert struct {
	ID          uint   `json:"id"`
	VehicleID   uint   `json:"vehicle_id"`
	VehicleName string `json:"vehicle_name"`
	Description string `json:"description"`
	Date        string `json:"date"` // 2006-01-02
}
