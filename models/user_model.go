package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	UserTypeAgent    = 1
	UserTypeClient   = 2
	UserTypeEmployee = 3
)

type User struct {
	gorm.Model
	Username  string `json:"username" gorm:"unique"`
	Password  string `json:"-"`
	Name      string `json:"name"`
	Email     string `json:"email" gorm:"index"`
	Phone     string `json:"phone" gorm:"index"`
	UserType  int    `json:"user_type" gorm:"default:3"`
	City      string `json:"city"`
	Country   string `json:"country"`
	IsAdmin   bool   `json:"is_admin" gorm:"default:false"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type UserSession struct {
	gorm.Model
	UserID         uint      `json:"user_id" gorm:"index"`
	SessionID      string    `json:"session_id" gorm:"uniqueIndex"`
	IsActive       bool      `json:"is_active" gorm:"default:true"`
	ExpiresAt      time.Time `json:"expires_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
}
