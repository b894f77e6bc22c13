package model

import (
	"time"
)

// Vehicle 车辆信息
type Vehicle struct {
	ID              uint       `json:"id" gorm:"primaryKey"`
	Name            string     `json:"name" gorm:"size:80;not null"`
	VehicleType     string     `json:"vehicle_type" gorm:"column:vehicle_type;size:50;not null;default:'Truck'"` // Truck, Van, Pickup, Car, ...
	Model           string     `json:"model,omitempty" gorm:"size:100"`
	Year            int        `json:"year,omitempty"`
	CurrentLocation string     `json:"current_location,omitempty" gorm:"column:current_location;size:200"`
	Latitude        float64    `json:"latitude"`
	Longitude       float64    `json:"longitude"`
	FuelLevel       float64    `json:"fuel_level" gorm:"column:fuel_level;default:100"` // percent of tank, 0-100
	Status          string     `json:"status" gorm:"size:50;default:'active'"`
	LastMaintenance *time.Time `json:"last_maintenance,omitempty" gorm:"column:last_maintenance"`
	TankCapacity    float64    `json:"tank_capacity" gorm:"column:tank_capacity;default:100"`
	ImageURL        string     `json:"image_url,omitempty" gorm:"column:image_url;size:500"`
	CreatedAt       time.Time  `json:"created_at" gorm:"not null;default:now()"`
	UpdatedAt       time.Time  `json:"updated_at" gorm:"not null;default:now()"`

	// 关联
	MaintenanceRecords []MaintenanceRecord `json:"maintenance_records,omitempty" gorm:"foreignKey:VehicleID"`
	FuelRecords        []FuelRecord        `json:"fuel_records,omitempty" gorm:"foreignKey:VehicleID"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

// CreateVehicleRequest 创建车辆请求
type CreateVehicleRequest struct {
	Name         string  `json:"name" form:"name" binding:"required"`
	VehicleType  string  `json:"vehicle_type" form:"vehicle_type" binding:"required"`
	Model        string  `json:"model" form:"model"`
	Year         int     `json:"year" form:"year"`
	TankCapacity float64 `json:"tank_capacity" form:"tank_capacity"`
	ImageURL     string  `json:"image_url" form:"image_url"`
}

// UpdateVehicleRequest 更新车辆请求
type UpdateVehicleRequest struct {
	Name            string   `json:"name" form:"name"`
	VehicleType     string   `json:"vehicle_type" form:"vehicle_type"`
	Model           string   `json:"model" form:"model"`
	Year            int      `json:"year" form:"year"`
	TankCapacity    float64  `json:"tank_capacity" form:"tank_capacity"`
	ImageURL        string   `json:"image_url" form:"image_url"`
	Status          string   `json:"status" form:"status"`
	CurrentLocation string   `json:"current_location" form:"current_location"`
	Latitude        *float64 `json:"latitude" form:"latitude"`
	Longitude       *float64 `json:"longitude" form:"longitude"`
}

// VehicleLocation 车辆定位快照，用于地图展示
type VehicleLocation struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Status    string  `json:"status"`
	FuelLevel float64 `json:"fuel_level"`
}

// VehicleDetail 车辆详情（含历史记录与油量标识色）
type VehicleDetail struct {
	Vehicle            Vehicle             `json:"vehicle"`
	FuelLevelColor     string              `json:"fuel_level_color"`
	MaintenanceRecords []MaintenanceRecord `json:"maintenance_records"`
	FuelRecords        []FuelRecord        `json:"fuel_records"`
}
