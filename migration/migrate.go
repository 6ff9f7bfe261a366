package migration

import (
	"warranty-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.UserSession{},
		&models.ProductType{},
		&models.Product{},
		&models.OperationRecord{},
		&models.RepairRecord{},
		&models.AccessCode{},
		&models.Attachment{},
	)
}
