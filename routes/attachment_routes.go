package routes

import (
	"warranty-app/controllers"
	"warranty-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAttachmentRoutes(app *fiber.App, attachmentController *controllers.AttachmentController) {
	api := app.Group("/api/v1/attachments", middleware.AuthMiddleware)

	api.Post("/", attachmentController.CreateAttachment)
	api.Get("/", attachmentController.GetAttachments)
	api.Delete("/:id", attachmentController.DeleteAttachment)
}
