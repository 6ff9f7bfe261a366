package models

import (
	"time"

	"gorm.io/gorm"
)

// AccessCode gates the unauthenticated self-service warranty pages.
// ValidityDays = -1 means the code never expires.
type AccessCode struct {
	gorm.Model
	Code         string `json:"code" gorm:"uniqueIndex"`
	Description  string `json:"description"`
	IsActive     bool   `json:"is_active" gorm:"default:true"`
	ValidityDays int    `json:"validity_days" gorm:"default:-1"`
	CreatedBy    int
	UpdatedBy    int
}

func (a *AccessCode) IsValid(now time.Time) bool {
	if !a.IsActive {
		return false
	}
	if a.ValidityDays < 0 {
		return true
	}
	return now.Before(a.CreatedAt.AddDate(0, 0, a.ValidityDays))
}
