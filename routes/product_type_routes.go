package routes

import (
	"warranty-app/controllers"
	"warranty-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupProductTypeRoutes(app *fiber.App, productTypeController *controllers.ProductTypeController) {
	api := app.Group("/api/v1/product-types", middleware.AuthMiddleware)

	api.Post("/", productTypeController.CreateProductType)
	api.Get("/:id", productTypeController.GetProductTypeByID)
	api.Get("/", productTypeController.GetAllProductTypes)
	api.Put("/:id", productTypeController.UpdateProductType)
	api.Delete("/:id", middleware.RequireAdmin, productTypeController.DeleteProductType)
}
