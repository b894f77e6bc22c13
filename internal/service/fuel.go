// Fuel purchase workflow.

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/model"
)

// Accepted timestamp layouts for fuel purchases. The first is what the
// dashboard form submits (datetime-local input).
var fuelTimeLayouts = []string{"2006-01-02T15:04", time.RFC3339}

// FuelService records fuel purchases and their effect on vehicle fuel
// levels.
type FuelService struct {
	db     *gorm.DB
	events *EventPublisher
}

// NewFuelService creates a new fuel service
func NewFuelService(db *gorm.DB, events *EventPublisher) *FuelService {
	return &FuelService{db: db, events: events}
}

// List returns all fuel records, newest first
func (s *FuelService) List(ctx context.Context) ([]model.FuelRecord, error) {
	var records []model.FuelRecord
	err := s.db.WithContext(ctx).Order("date DESC").Find(&records).Error
	return records, err
}

// RecordPurchase creates a fuel record and tops up the vehicle's fuel
// level in one transaction. The vehicle row is locked for the duration
// so concurrent purchases against the same vehicle cannot lose updates.
// New level: min(100, level + quantity/tank_capacity*100).
func (s *FuelService) RecordPurchase(ctx context.Context, req *model.CreateFuelRecordRequest) (*model.FuelRecord, error) {
	date, err := parseFuelTime(req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", req.Date, model.ErrValidation)
	}

	record := &model.FuelRecord{
		VehicleID: req.VehicleID,
		DriverID:  req.DriverID,
		Date:      date,
		Quantity:  req.Quantity,
		Cost:      req.Cost,
		Location:  req.Location,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var vehicle model.Vehicle
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&vehicle, req.VehicleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("vehicle %d: %w", req.VehicleID, model.ErrNotFound)
			}
			return err
		}

		var driver model.Driver
		if err := tx.First(&driver, req.DriverID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("driver %d: %w", req.DriverID, model.ErrNotFound)
			}
			return err
		}

		if err := tx.Create(record).Error; err != nil {
			return err
		}

		level := vehicle.FuelLevel + (record.Quantity/vehicle.TankCapacity)*100
		if level > 100 {
			level = 100
		}

		return tx.Model(&model.Vehicle{}).Where("id = ?", vehicle.ID).Updates(map[string]interface{}{
			"fuel_level": level,
			"updated_at": time.Now().UTC(),
		}).Error
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(SubjectFuelEvents, "fuel_recorded", record.VehicleID, record)
	return record, nil
}

func parseFuelTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range fuelTimeLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
