package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"golang.org/x/crypto/bcrypt"

	"github.com/kevin123-bit/FLEET-MANAGEMENT-1/internal/model"
)

func TestRegisterDuplicateUsername(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := svc.Register(context.Background(), &model.SignupRequest{
		Username: "admin",
		Email:    "new@fleet.com",
		Password: "secret123",
	})
	if !errors.Is(err, model.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	// no INSERT was expected; ensure only the count query ran
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WithArgs("newuser").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WithArgs("admin@fleet.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := svc.Register(context.Background(), &model.SignupRequest{
		Username: "newuser",
		Email:    "admin@fleet.com",
		Password: "secret123",
	})
	if !errors.Is(err, model.ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewAuthService(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	user, err := svc.Register(context.Background(), &model.SignupRequest{
		Username: "newuser",
		Email:    "new@fleet.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.Password == "secret123" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	db, mock := newTestDB(t)
	svc := NewAuthService(db)

	userRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "username", "password", "email"}).
			AddRow(1, "admin", string(hash), "admin@fleet.com")
	}

	mock.ExpectQuery(`SELECT .* FROM "users"`).WillReturnRows(userRows())
	user, err := svc.Authenticate(context.Background(), "admin", "admin123")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if user.Username != "admin" {
		t.Errorf("username = %q", user.Username)
	}

	mock.ExpectQuery(`SELECT .* FROM "users"`).WillReturnRows(userRows())
	if _, err := svc.Authenticate(context.Background(), "admin", "wrong"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for bad password, got %v", err)
	}

	mock.ExpectQuery(`SELECT .* FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	if _, err := svc.Authenticate(context.Background(), "ghost", "admin123"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown user, got %v", err)
	}
}
