package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/model"
	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/stats"
)

// FleetService assembles the per-page snapshots the dashboard renders.
// All aggregates are recomputed per call from current store contents.
type FleetService struct {
	db *gorm.DB
}

// NewFleetService creates a new fleet service
func NewFleetService(db *gorm.DB) *FleetService {
	return &FleetService{db: db}
}

// DashboardSnapshot is the payload of the main dashboard page
type DashboardSnapshot struct {
	Vehicles []model.Vehicle `json:"vehicles"`
	Drivers  []model.Driver  `json:"drivers"`
}

// DriverPerformancePage is the payload of the driver performance page
type DriverPerformancePage struct {
	Drivers []model.DriverView  `json:"drivers"`
	Summary stats.DriverSummary `json:"summary"`
}

// FuelManagementPage is the payload of the fuel management page
type FuelManagementPage struct {
	Vehicles    []model.Vehicle        `json:"vehicles"`
	Drivers     []model.Driver         `json:"drivers"`
	FuelRecords []model.FuelRecord     `json:"fuel_records"`
	Stats       stats.MonthlyFuelStats `json:"stats"`
}

// MaintenancePage is the payload of the maintenance page
type MaintenancePage struct {
	Vehicles            []model.Vehicle           `json:"vehicles"`
	UpcomingMaintenance []model.MaintenanceRecord `json:"upcoming_maintenance"`
	MaintenanceHistory  []model.MaintenanceRecord `json:"maintenance_history"`
}

// Maintenance computes the maintenance page: all vehicles plus the
// scheduled and completed record sets
func (s *FleetService) Maintenance(ctx context.Context) (*MaintenancePage, error) {
	page := &MaintenancePage{}
	if err := s.db.WithContext(ctx).Order("id").Find(&page.Vehicles).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Where("status = ?", model.MaintenanceScheduled).Order("date").Find(&page.UpcomingMaintenance).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Where("status = ?", model.MaintenanceCompleted).Order("date DESC").Find(&page.MaintenanceHistory).Error; err != nil {
		return nil, err
	}
	return page, nil
}

// Dashboard loads all vehicles and drivers
func (s *FleetService) Dashboard(ctx context.Context) (*DashboardSnapshot, error) {
	snapshot := &DashboardSnapshot{}
	if err := s.db.WithContext(ctx).Order("id").Find(&snapshot.Vehicles).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Order("id").Find(&snapshot.Drivers).Error; err != nil {
		return nil, err
	}
	return snapshot, nil
}

// DriverPerformance computes the driver page: each driver with derived
// safety fields plus the fleet-wide summary
func (s *FleetService) DriverPerformance(ctx context.Context) (*DriverPerformancePage, error) {
	var drivers []model.Driver
	if err := s.db.WithContext(ctx).Order("id").Find(&drivers).Error; err != nil {
		return nil, err
	}

	page := &DriverPerformancePage{
		Drivers: make([]model.DriverView, 0, len(drivers)),
		Summary: stats.SummarizeDrivers(drivers),
	}
	for _, d := range drivers {
		rating := d.SafetyRating()
		page.Drivers = append(page.Drivers, model.DriverView{
			Driver:       d,
			SafetyRating: rating,
			SafetyBadge:  stats.SafetyBadgeColor(rating),
		})
	}
	return page, nil
}

// FuelManagement computes the fuel page: all records newest first plus
// current-month statistics (UTC month boundary)
func (s *FleetService) FuelManagement(ctx context.Context) (*FuelManagementPage, error) {
	page := &FuelManagementPage{}
	if err := s.db.WithContext(ctx).Order("id").Find(&page.Vehicles).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Order("id").Find(&page.Drivers).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Order("date DESC").Find(&page.FuelRecords).Error; err != nil {
		return nil, err
	}

	page.Stats = stats.MonthlyFuel(page.FuelRecords, len(page.Vehicles), time.Now().UTC())
	return page, nil
}
