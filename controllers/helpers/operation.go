package helpers

import (
	"warranty-app/models"

	"gorm.io/gorm"
)

// InsertOperationRecord appends one audit row for a lifecycle transition.
// The timestamp is assigned at write time; callers never supply it. Always
// called on the same tx as the status mutation it describes.
func InsertOperationRecord(db *gorm.DB, productID uint, operator string, opType int, description string) error {
	record := models.OperationRecord{
		ProductID:     productID,
		Operator:      operator,
		OperationType: opType,
		Description:   description,
	}

	if err := db.Create(&record).Error; err != nil {
		return err
	}

	return nil
}
