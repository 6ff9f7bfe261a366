package routes

import (
	"warranty-app/config"
	"warranty-app/controllers"
	"warranty-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App, authController *controllers.AuthController) {
	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Post("/login", authController.Login)
	api.Post("/refresh", authController.Refresh)

	protected := app.Group(config.MAIN_ROUTES+"/auth", middleware.AuthMiddleware)
	protected.Post("/logout", authController.Logout)
	protected.Get("/me", authController.Me)
}
