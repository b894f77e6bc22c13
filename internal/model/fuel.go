package model

import (
	"time"
)

// FuelRecord 加油记录。写入后不可修改。
type FuelRecord struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	VehicleID uint      `json:"vehicle_id" gorm:"column:vehicle_id;not null"`
	DriverID  uint      `json:"driver_id" gorm:"column:driver_id;not null"`
	Date      time.Time `json:"date" gorm:"not null"`
	Quantity  float64   `json:"quantity" gorm:"not null"`
	Cost      float64   `json:"cost"`
	Location  string    `json:"location,omitempty" gorm:"size:200"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:now()"`

	// 关联
	Vehicle *Vehicle `json:"vehicle,omitempty" gorm:"foreignKey:VehicleID"`
	Driver  *Driver  `json:"driver,omitempty" gorm:"foreignKey:DriverID"`
}

func (FuelRecord) TableName() string {
	return "fuel_records"
}

// CreateFuelRecordRequest 创建加油记录请求
type CreateFuelRecordRequest struct {
	VehicleID uint    `json:"vehicle_id" form:"vehicle_id" binding:"required"`
	DriverID  uint    `json:"driver_id" form:"driver_id" binding:"required"`
	Date      string  `json:"date" form:"date" binding:"required"` // 2006-01-02T15:04
	Quantity  float64 `json:"quantity" form:"quantity" binding:"required,gt=0"`
	Cost      float64 `json:"cost" form:"cost"`
	Location  string  `json:"location" form:"location"`
}
