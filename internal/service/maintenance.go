package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/model"
)

const maintenanceDateLayout = "2006-01-02"

// MaintenanceService manages the maintenance event lifecycle
type MaintenanceService struct {
	db     *gorm.DB
	events *EventPublisher
}

// NewMaintenanceService creates a new maintenance service
func NewMaintenanceService(db *gorm.DB, events *EventPublisher) *MaintenanceService {
	return &MaintenanceService{db: db, events: events}
}

// ListByStatus returns maintenance records in the given status
func (s *MaintenanceService) ListByStatus(ctx context.Context, status string) ([]model.MaintenanceRecord, error) {
	var records []model.MaintenanceRecord
	err := s.db.WithContext(ctx).Where("status = ?", status).Order("date").Find(&records).Error
	return records, err
}

// Schedule creates a maintenance record in the scheduled state
func (s *MaintenanceService) Schedule(ctx context.Context, req *model.CreateMaintenanceRequest) (*model.MaintenanceRecord, error) {
	date, err := time.Parse(maintenanceDateLayout, req.Date)
	if err != nil {
		if date, err = time.Parse(time.RFC3339, req.Date); err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", req.Date, model.ErrValidation)
		}
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&model.Vehicle{}).Where("id = ?", req.VehicleID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("vehicle %d: %w", req.VehicleID, model.ErrNotFound)
	}

	record := &model.MaintenanceRecord{
		VehicleID:   req.VehicleID,
		Date:        date,
		Description: req.Description,
		Cost:        req.Cost,
		Status:      model.MaintenanceScheduled,
	}
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}

	s.events.Publish(SubjectMaintenanceEvent, "maintenance_scheduled", record.VehicleID, record)
	return record, nil
}

// Complete transitions a scheduled record to completed and stamps the
// owning vehicle's last_maintenance, in one transaction. Completing a
// record twice fails with ErrConflict.
func (s *MaintenanceService) Complete(ctx context.Context, id uint) (*model.MaintenanceRecord, error) {
	var record model.MaintenanceRecord

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&record, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("maintenance record %d: %w", id, model.ErrNotFound)
			}
			return err
		}

		if record.Status == model.MaintenanceCompleted {
			return fmt.Errorf("maintenance record %d already completed: %w", id, model.ErrConflict)
		}

		now := time.Now().UTC()
		if err := tx.Model(&model.MaintenanceRecord{}).Where("id = ?", id).Update("status", model.MaintenanceCompleted).Error; err != nil {
			return err
		}
		record.Status = model.MaintenanceCompleted

		return tx.Model(&model.Vehicle{}).Where("id = ?", record.VehicleID).Updates(map[string]interface{}{
			"last_maintenance": now,
			"updated_at":       now,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(SubjectMaintenanceEvent, "maintenance_completed", record.VehicleID, &record)
	return &record, nil
}

// Alerts returns all scheduled maintenance as dashboard alerts with
// the vehicle name resolved and the date formatted YYYY-MM-DD
func (s *MaintenanceService) Alerts(ctx context.Context) ([]model.MaintenanceAlert, error) {
	var records []model.MaintenanceRecord
	if err := s.db.WithContext(ctx).Preload("Vehicle").Where("status = ?", model.MaintenanceScheduled).Order("date").Find(&records).Error; err != nil {
		return nil, err
	}

	alerts := make([]model.MaintenanceAlert, 0, len(records))
	for _, r := range records {
		alert := model.MaintenanceAlert{
			ID:          r.ID,
			VehicleID:   r.VehicleID,
			Description: r.Description,
			Date:        r.Date.Format(maintenanceDateLayout),
		}
		if r.Vehicle != nil {
			alert.VehicleName = r.Vehicle.Name
		}
		alerts = append(alerts, alert)
	}
	return alerts, nil
}
