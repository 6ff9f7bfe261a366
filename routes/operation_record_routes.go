package routes

import (
	"warranty-app/controllers"
	"warranty-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupOperationRecordRoutes(app *fiber.App, operationRecordController *controllers.OperationRecordController) {
	api := app.Group("/api/v1/operation-records", middleware.AuthMiddleware)

	api.Get("/", operationRecordController.GetAllOperationRecords)
}
