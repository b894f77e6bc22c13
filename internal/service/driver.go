package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/model"
	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/stats"
)

// DriverService handles driver records
type DriverService struct {
	db *gorm.DB
}

// NewDriverService creates a new driver service
func NewDriverService(db *gorm.DB) *DriverService {
	return &DriverService{db: db}
}

// List returns all drivers in store order
func (s *DriverService) List(ctx context.Context) ([]model.Driver, error) {
	var drivers []model.Driver
	err := s.db.WithContext(ctx).Order("id").Find(&drivers).Error
	return drivers, err
}

// Get loads a driver by ID
func (s *DriverService) Get(ctx context.Context, id uint) (*model.Driver, error) {
	var driver model.Driver
	if err := s.db.WithContext(ctx).First(&driver, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("driver %d: %w", id, model.ErrNotFound)
		}
		return nil, err
	}
	return &driver, nil
}

// Create creates a new driver. Scores default to 7.0 when omitted.
func (s *DriverService) Create(ctx context.Context, req *model.CreateDriverRequest) (*model.Driver, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Driver{}).Where("license_number = ?", req.LicenseNumber).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("license number already exists: %w", model.ErrConflict)
	}

	if req.VehicleID != nil {
		if err := s.vehicleExists(ctx, *req.VehicleID); err != nil {
			return nil, err
		}
	}

	driver := &model.Driver{
		Name:              req.Name,
		LicenseNumber:     req.LicenseNumber,
		VehicleID:         req.VehicleID,
		PerformanceRating: 7.0,
		SpeedScore:        7.0,
		BrakingScore:      7.0,
	}
	if req.SpeedScore != nil {
		driver.SpeedScore = *req.SpeedScore
	}
	if req.BrakingScore != nil {
		driver.BrakingScore = *req.BrakingScore
	}

	if err := s.db.WithContext(ctx).Create(driver).Error; err != nil {
		return nil, err
	}
	return driver, nil
}

// Update updates a driver, writing only fields present in the request
func (s *DriverService) Update(ctx context.Context, id uint, req *model.UpdateDriverRequest) (*model.Driver, error) {
	driver, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.LicenseNumber != "" && req.LicenseNumber != driver.LicenseNumber {
		var count int64
		if err := s.db.WithContext(ctx).Model(&model.Driver{}).Where("license_number = ? AND id <> ?", req.LicenseNumber, id).Count(&count).Error; err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, fmt.Errorf("license number already exists: %w", model.ErrConflict)
		}
		updates["license_number"] = req.LicenseNumber
	}
	if req.VehicleID != nil {
		if err := s.vehicleExists(ctx, *req.VehicleID); err != nil {
			return nil, err
		}
		updates["vehicle_id"] = *req.VehicleID
	}
	if req.PerformanceRating != nil {
		updates["performance_rating"] = *req.PerformanceRating
	}
	if req.SpeedScore != nil {
		updates["speed_score"] = *req.SpeedScore
	}
	if req.BrakingScore != nil {
		updates["braking_score"] = *req.BrakingScore
	}

	if err := s.db.WithContext(ctx).Model(driver).Updates(updates).Error; err != nil {
		return nil, err
	}
	return driver, nil
}

// PerformanceHistory returns the synthetic six-month trend for a driver
func (s *DriverService) PerformanceHistory(ctx context.Context, id uint) (*model.DriverPerformanceHistory, error) {
	driver, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	h := stats.PerformanceHistory(driver.Name, driver.PerformanceRating, time.Now().UTC())
	return &h, nil
}

func (s *DriverService) vehicleExists(ctx context.Context, id uint) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Vehicle{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("vehicle %d: %w", id, model.ErrNotFound)
	}
	return nil
}
