package models

import "gorm.io/gorm"

type ProductType struct {
	gorm.Model
	Name           string `json:"name" gorm:"index"`
	ModelNumber    string `json:"model_number" gorm:"index"`
	Specifications string `json:"specifications" gorm:"type:text"`
	Description    string `json:"description" gorm:"type:text"`
	WarrantyPeriod int    `json:"warranty_period" gorm:"default:1095"` // days
	CreatedBy      int
	UpdatedBy      int
	DeletedBy      int
}
