package models

import (
	"time"
	"warranty-app/controllers/idgen"
	"warranty-app/types"

	"gorm.io/gorm"
)

const (
	RepairPending      = 1
	RepairInProgress   = 2
	RepairCompleted    = 3
	RepairUnrepairable = 4
)

type RepairRecord struct {
	ID             types.SnowflakeID `json:"ID" gorm:"primaryKey"`
	ProductID      uint              `json:"product_id" gorm:"index"`
	Product        *Product          `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	TechnicianID   *uint             `json:"technician_id" gorm:"index"`
	Technician     *User             `json:"technician,omitempty" gorm:"foreignKey:TechnicianID"`
	RepairReason   string            `json:"repair_reason" gorm:"type:text"`
	RepairSolution string            `json:"repair_solution" gorm:"type:text"`
	RepairDate     *time.Time        `json:"repair_date"`
	Status         int               `json:"status" gorm:"index;default:1"`
	// Contact snapshot at the time of the request. The product's contact
	// fields may change later; these must not.
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerEmail   string `json:"customer_email"`
	CustomerCity    string `json:"customer_city"`
	CustomerCountry string `json:"customer_country"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt
}

func (r *RepairRecord) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == 0 {
		r.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return
}
