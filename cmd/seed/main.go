// Seeds the database with sample fleet data for local development.
// Drops and recreates all tables.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/config"
	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/model"
)

var maintenanceDescriptions = []string{
	"Oil Change",
	"Tire Rotation",
	"Brake Inspection",
	"Engine Maintenance",
	"General Service",
}

var vehicleTypes = []string{"Truck", "Van", "Pickup", "Car"}

func main() {
	cfg := config.Load()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		log.Fatalf("[Seed] Failed to connect to database: %v", err)
	}

	if err := db.Migrator().DropTable(
		&model.FuelRecord{},
		&model.MaintenanceRecord{},
		&model.Driver{},
		&model.Vehicle{},
		&model.User{},
	); err != nil {
		log.Fatalf("[Seed] Failed to drop tables: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Vehicle{},
		&model.Driver{},
		&model.MaintenanceRecord{},
		&model.FuelRecord{},
	); err != nil {
		log.Fatalf("[Seed] Failed to migrate: %v", err)
	}

	if err := seed(db); err != nil {
		log.Fatalf("[Seed] Failed to seed: %v", err)
	}
	log.Println("[Seed] Database initialized with sample data")
}

func seed(db *gorm.DB) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := model.User{
		Username: "admin",
		Password: string(hashed),
		Email:    "admin@fleet.com",
		IsAdmin:  true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	now := time.Now().UTC()

	var vehicles []model.Vehicle
	for i := 1; i <= 5; i++ {
		status := "active"
		if rand.Float64() < 0.2 {
			status = "maintenance"
		}
		last := now.AddDate(0, 0, -rand.Intn(30)-1)
		vehicles = append(vehicles, model.Vehicle{
			Name:            fmt.Sprintf("Truck-%d", i),
			VehicleType:     vehicleTypes[(i-1)%len(vehicleTypes)],
			CurrentLocation: fmt.Sprintf("Location %d", i),
			Latitude:        40.7 + rand.Float64()*0.3,
			Longitude:       -74.1 + rand.Float64()*0.2,
			FuelLevel:       30 + rand.Float64()*70,
			TankCapacity:    100,
			Status:          status,
			LastMaintenance: &last,
		})
	}
	if err := db.Create(&vehicles).Error; err != nil {
		return err
	}

	var drivers []model.Driver
	for i := 1; i <= 5; i++ {
		vehicleID := vehicles[i-1].ID
		drivers = append(drivers, model.Driver{
			Name:              fmt.Sprintf("Driver %d", i),
			LicenseNumber:     fmt.Sprintf("LIC-%d", 1000+i),
			PerformanceRating: 6.0 + rand.Float64()*3.5,
			SpeedScore:        6.0 + rand.Float64()*3.5,
			BrakingScore:      6.0 + rand.Float64()*3.5,
			VehicleID:         &vehicleID,
		})
	}
	if err := db.Create(&drivers).Error; err != nil {
		return err
	}

	for _, v := range vehicles {
		for j := 0; j < 3; j++ {
			status := model.MaintenanceScheduled
			if rand.Float64() < 0.5 {
				status = model.MaintenanceCompleted
			}
			record := model.MaintenanceRecord{
				VehicleID:   v.ID,
				Date:        now.AddDate(0, 0, -rand.Intn(60)-1),
				Description: maintenanceDescriptions[rand.Intn(len(maintenanceDescriptions))],
				Cost:        100 + rand.Float64()*900,
				Status:      status,
			}
			if err := db.Create(&record).Error; err != nil {
				return err
			}
		}
	}

	for i := 0; i < 20; i++ {
		record := model.FuelRecord{
			VehicleID: vehicles[rand.Intn(len(vehicles))].ID,
			DriverID:  drivers[rand.Intn(len(drivers))].ID,
			Date:      now.AddDate(0, 0, -rand.Intn(30)-1),
			Quantity:  20 + rand.Float64()*80,
			Cost:      50 + rand.Float64()*200,
			Location:  fmt.Sprintf("Gas Station %d", rand.Intn(5)+1),
		}
		if err := db.Create(&record).Error; err != nil {
			return err
		}
	}

	return nil
}
