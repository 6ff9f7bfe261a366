package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusGenerated = 1
	StatusShipped   = 2
	StatusActivated = 3
	StatusInRepair  = 4
	StatusScrapped  = 5
)

var statusLabels = map[int]string{
	StatusGenerated: "generated",
	StatusShipped:   "shipped",
	StatusActivated: "activated",
	StatusInRepair:  "in_repair",
	StatusScrapped:  "scrapped",
}

// allowedTransitions is the product lifecycle. Forward only, except the
// repair loop ACTIVATED <-> IN_REPAIR. SCRAPPED is terminal.
var allowedTransitions = map[int][]int{
	StatusGenerated: {StatusShipped, StatusScrapped},
	StatusShipped:   {StatusActivated, StatusScrapped},
	StatusActivated: {StatusInRepair, StatusScrapped},
	StatusInRepair:  {StatusActivated, StatusScrapped},
	StatusScrapped:  {},
}

func CanTransition(from, to int) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func StatusLabel(status int) string {
	if label, ok := statusLabels[status]; ok {
		return label
	}
	return "unknown"
}

type Product struct {
	gorm.Model
	QRCodeID          string       `json:"qrcode_id" gorm:"column:qrcode_id;uniqueIndex;size:16"`
	ProductTypeID     *uint        `json:"product_type_id" gorm:"index"`
	ProductType       *ProductType `json:"product_type,omitempty" gorm:"foreignKey:ProductTypeID;constraint:OnDelete:CASCADE"`
	AgentID           *uint        `json:"agent_id" gorm:"index"`
	Agent             *User        `json:"agent,omitempty" gorm:"foreignKey:AgentID"`
	ShippingDate      *time.Time   `json:"shipping_date"`
	ActivationDate    *time.Time   `json:"activation_date"`
	WarrantyStartDate *time.Time   `json:"warranty_start_date"`
	WarrantyEndDate   *time.Time   `json:"warranty_end_date"`
	Status            int          `json:"status" gorm:"index;default:1"`
	Name              string       `json:"name"`
	Phone             string       `json:"phone" gorm:"index"`
	Email             string       `json:"email" gorm:"index"`
	City              string       `json:"city"`
	Country           string       `json:"country"`
	Installer         string       `json:"installer"`
	FactoryRemark     string       `json:"factory_remark" gorm:"type:text"`
	CreatedBy         int
	UpdatedBy         int
	DeletedBy         int
}
