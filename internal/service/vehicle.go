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

// VehicleService 车辆服务
type VehicleService struct {
	db *gorm.DB
}

// NewVehicleService 创建车辆服务
func NewVehicleService(db *gorm.DB) *VehicleService {
	return &VehicleService{db: db}
}

// List 获取全部车辆
func (s *VehicleService) List(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	err := s.db.WithContext(ctx).Order("id").Find(&vehicles).Error
	return vehicles, err
}

// Get 获取车辆
func (s *VehicleService) Get(ctx context.Context, id uint) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := s.db.WithContext(ctx).First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("vehicle %d: %w", id, model.ErrNotFound)
		}
		return nil, err
	}
	return &vehicle, nil
}

// GetDetail 获取车辆详情，含维保与加油历史（按日期倒序）
func (s *VehicleService) GetDetail(ctx context.Context, id uint) (*model.VehicleDetail, error) {
	vehicle, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	var maintenance []model.MaintenanceRecord
	if err := s.db.WithContext(ctx).Where("vehicle_id = ?", id).Order("date DESC").Find(&maintenance).Error; err != nil {
		return nil, err
	}

	var fuel []model.FuelRecord
	if err := s.db.WithContext(ctx).Where("vehicle_id = ?", id).Order("date DESC").Find(&fuel).Error; err != nil {
		return nil, err
	}

	return &model.VehicleDetail{
		Vehicle:            *vehicle,
		FuelLevelColor:     stats.FuelLevelColor(vehicle.FuelLevel),
		MaintenanceRecords: maintenance,
		FuelRecords:        fuel,
	}, nil
}

// Create 创建车辆
func (s *VehicleService) Create(ctx context.Context, req *model.CreateVehicleRequest) (*model.Vehicle, error) {
	vehicle := &model.Vehicle{
		Name:        req.Name,
		VehicleType: req.VehicleType,
		Model:       req.Model,
		Year:        req.Year,
		ImageURL:    req.ImageURL,
		FuelLevel:   100,
		Status:      "active",
	}
	vehicle.TankCapacity = 100
	if req.TankCapacity > 0 {
		vehicle.TankCapacity = req.TankCapacity
	}

	if err := s.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		return nil, err
	}
	return vehicle, nil
}

// Update 更新车辆，仅写入出现的字段，updated_at 每次刷新
func (s *VehicleService) Update(ctx context.Context, id uint, req *model.UpdateVehicleRequest) (*model.Vehicle, error) {
	vehicle, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.VehicleType != "" {
		updates["vehicle_type"] = req.VehicleType
	}
	if req.Model != "" {
		updates["model"] = req.Model
	}
	if req.Year > 0 {
		updates["year"] = req.Year
	}
	if req.TankCapacity > 0 {
		updates["tank_capacity"] = req.TankCapacity
	}
	if req.ImageURL != "" {
		updates["image_url"] = req.ImageURL
	}
	if req.Status != "" {
		updates["status"] = req.Status
	}
	if req.CurrentLocation != "" {
		updates["current_location"] = req.CurrentLocation
	}
	if req.Latitude != nil {
		updates["latitude"] = *req.Latitude
	}
	if req.Longitude != nil {
		updates["longitude"] = *req.Longitude
	}

	if err := s.db.WithContext(ctx).Model(vehicle).Updates(updates).Error; err != nil {
		return nil, err
	}
	return vehicle, nil
}

// Locations 车辆定位快照，用于地图
func (s *VehicleService) Locations(ctx context.Context) ([]model.VehicleLocation, error) {
	vehicles, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	locations := make([]model.VehicleLocation, 0, len(vehicles))
	for _, v := range vehicles {
		locations = append(locations, model.VehicleLocation{
			ID:        v.ID,
			Name:      v.Name,
			Latitude:  v.Latitude,
			Longitude: v.Longitude,
			Status:    v.Status,
			FuelLevel: v.FuelLevel,
		})
	}
	return locations, nil
}
