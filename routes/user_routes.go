package routes

import (
	"warranty-app/controllers"
	"warranty-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App, userController *controllers.UserController) {
	api := app.Group("/api/v1/users", middleware.AuthMiddleware)

	api.Post("/", middleware.RequireAdmin, userController.CreateUser)
	api.Get("/agents", userController.GetAgents)
	api.Get("/:id", userController.GetUserByID)
	api.Get("/", userController.GetAllUsers)
	api.Put("/:id", middleware.RequireAdmin, userController.UpdateUser)
	api.Delete("/:id", middleware.RequireAdmin, userController.DeleteUser)

	profile := app.Group("/api/v1/user", middleware.AuthMiddleware)
	profile.Get("/profile", userController.GetProfile)
}
