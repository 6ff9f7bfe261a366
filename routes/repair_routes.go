package routes

import (
	"warranty-app/controllers"
	"warranty-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupRepairRoutes(app *fiber.App, repairController *controllers.RepairController) {
	api := app.Group("/api/v1/repairs", middleware.AuthMiddleware)

	api.Post("/", repairController.OpenRepair)
	api.Post("/:id/complete", repairController.CompleteRepair)
	api.Post("/:id/unrepairable", repairController.MarkUnrepairable)
	api.Get("/:id/attachments", repairController.GetRepairAttachments)
	api.Post("/:id/attachments", repairController.AddRepairAttachment)
	api.Get("/:id", repairController.GetRepairByID)
	api.Get("/", repairController.GetAllRepairs)
}
