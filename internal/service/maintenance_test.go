package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/model"
)

func TestCompleteStampsVehicle(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewMaintenanceService(db, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "maintenance_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "vehicle_id", "description", "status"}).
			AddRow(5, 1, "Oil Change", model.MaintenanceScheduled))
	mock.ExpectExec(`UPDATE "maintenance_records"`).
		WithArgs(model.MaintenanceCompleted, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "vehicles"`).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	record, err := svc.Complete(context.Background(), 5)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if record.Status != model.MaintenanceCompleted {
		t.Errorf("status = %q, want %q", record.Status, model.MaintenanceCompleted)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCompleteTwiceConflicts(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewMaintenanceService(db, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "maintenance_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "vehicle_id", "status"}).
			AddRow(5, 1, model.MaintenanceCompleted))
	mock.ExpectRollback()

	_, err := svc.Complete(context.Background(), 5)
	if !errors.Is(err, model.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestCompleteUnknownRecord(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewMaintenanceService(db, nil)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM "maintenance_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	_, err := svc.Complete(context.Background(), 123)
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestScheduleUnknownVehicle(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewMaintenanceService(db, nil)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "vehicles"`).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, err := svc.Schedule(context.Background(), &model.CreateMaintenanceRequest{
		VehicleID:   99,
		Date:        "2024-04-01",
		Description: "Tire Rotation",
	})
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestScheduleRejectsBadDate(t *testing.T) {
	db, _ := newTestDB(t)
	svc := NewMaintenanceService(db, nil)

	_, err := svc.Schedule(context.Background(), &model.CreateMaintenanceRequest{
		VehicleID: 1,
		Date:      "04/01/2024",
	})
	if !errors.Is(err, model.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestScheduleCreatesScheduledRecord(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewMaintenanceService(db, nil)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "vehicles"`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`INSERT INTO "maintenance_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	record, err := svc.Schedule(context.Background(), &model.CreateMaintenanceRequest{
		VehicleID:   1,
		Date:        "2024-04-01",
		Description: "Brake Inspection",
		Cost:        120,
	})
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if record.Status != model.MaintenanceScheduled {
		t.Errorf("status = %q, want %q", record.Status, model.MaintenanceScheduled)
	}
	want := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	if !record.Date.Equal(want) {
		t.Errorf("date = %v, want %v", record.Date, want)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
