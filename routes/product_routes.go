package routes

import (
	"warranty-app/controllers"
	"warranty-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupProductRoutes(app *fiber.App, productController *controllers.ProductController) {
	api := app.Group("/api/v1/products", middleware.AuthMiddleware)

	api.Post("/", productController.CreateProduct)
	api.Post("/bulk", productController.BulkCreateProducts)
	api.Post("/generate", productController.GenerateProducts)
	api.Post("/ship", productController.BulkShipping)
	api.Post("/activate", productController.ActivateProduct)
	api.Post("/scrap", productController.ScrapProduct)
	api.Post("/check-warranty", productController.CheckWarranty)
	api.Get("/search", productController.GetByQRCode)
	api.Get("/:qrcode/operations", productController.GetProductOperations)
	api.Get("/", productController.GetAllProducts)
}
