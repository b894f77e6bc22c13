package model

import (
	"time"
)

// User represents an account that can sign in to the dashboard
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;size:80;not null"`
	Password  string    `json:"-" gorm:"size:255;not null"` // bcrypt hash
	Email     string    `json:"email" gorm:"uniqueIndex;size:120;not null"`
	IsAdmin   bool      `json:"is_admin" gorm:"column:is_admin;default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:now()"`
}

func (User) TableName() string {
	return "users"
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SignupRequest represents a new account registration
type SignupRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
	Email    string `json:"email" form:"email" binding:"required,email"`
}
