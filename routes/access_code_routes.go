package routes

import (
	"warranty-app/controllers"
	"warranty-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAccessCodeRoutes(app *fiber.App, accessCodeController *controllers.AccessCodeController) {
	api := app.Group("/api/v1/access-codes", middleware.AuthMiddleware, middleware.RequireAdmin)

	api.Post("/", accessCodeController.CreateAccessCode)
	api.Get("/", accessCodeController.GetAllAccessCodes)
	api.Put("/:id", accessCodeController.UpdateAccessCode)
	api.Delete("/:id", accessCodeController.DeleteAccessCode)
}
