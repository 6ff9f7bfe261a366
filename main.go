package main

import (
	"fmt"
	"log"

	"warranty-app/config"
	"warranty-app/controllers"
	"warranty-app/controllers/guest"
	"warranty-app/controllers/idgen"
	"warranty-app/database"
	"warranty-app/migration"
	"warranty-app/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadConfig()

	app := fiber.New()

	database.EnsureDatabaseExists(config.DBName)

	db, err := database.OpenDatabaseConnection(config.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app, controllers.NewAuthController(db))
	routes.SetupUserRoutes(app, controllers.NewUserController(db))
	routes.SetupProductTypeRoutes(app, controllers.NewProductTypeController(db))
	routes.SetupProductRoutes(app, controllers.NewProductController(db))
	routes.SetupRepairRoutes(app, controllers.NewRepairController(db))
	routes.SetupOperationRecordRoutes(app, controllers.NewOperationRecordController(db))
	routes.SetupAccessCodeRoutes(app, controllers.NewAccessCodeController(db))
	routes.SetupAttachmentRoutes(app, controllers.NewAttachmentController(db))
	routes.SetupGuestRoutes(app, db, guest.NewWarrantyController(db))

	port := config.APP_PORT
	fmt.Println("🚀 Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
