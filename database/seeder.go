// database/seeder.go
package database

import (
	"log"
	"warranty-app/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedAdminUser(db)
	SeedProductTypes(db)
	SeedAccessCode(db)
}

func SeedAdminUser(db *gorm.DB) {
	var existing models.User
	if err := db.Where("username = ?", "admin").First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
			if err != nil {
				log.Fatalf("Failed to hash seed password: %v", err)
			}
			admin := models.User{
				Username: "admin",
				Password: string(hashed),
				Name:     "Administrator",
				Email:    "admin@warranty.local",
				UserType: models.UserTypeEmployee,
				IsAdmin:  true,
			}
			if err := db.Create(&admin).Error; err != nil {
				log.Fatalf("Failed to seed admin user: %v", err)
			}
		}
	}
}

func SeedProductTypes(db *gorm.DB) {
	productTypes := []models.ProductType{
		{Name: "Water Purifier A1", ModelNumber: "WP-A1", WarrantyPeriod: 1095},
		{Name: "Water Purifier A2", ModelNumber: "WP-A2", WarrantyPeriod: 730},
	}

	for _, pt := range productTypes {
		var existing models.ProductType
		if err := db.Where("model_number = ?", pt.ModelNumber).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&pt)
			}
		}
	}
}

func SeedAccessCode(db *gorm.DB) {
	var existing models.AccessCode
	if err := db.Where("code = ?", "WARRANTY2025").First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			db.Create(&models.AccessCode{
				Code:         "WARRANTY2025",
				Description:  "Default self-service registration code",
				IsActive:     true,
				ValidityDays: -1,
			})
		}
	}
}
