package routes

import (
	"warranty-app/config"
	"warranty-app/controllers/guest"
	"warranty-app/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupGuestRoutes wires the unauthenticated self-service flow. No JWT:
// the access-code middleware gates these instead.
func SetupGuestRoutes(app *fiber.App, db *gorm.DB, warrantyController *guest.WarrantyController) {
	api := app.Group(config.GUEST_ROUTES, middleware.AccessCodeMiddleware(db))

	api.Get("/warranty/:qrcode", warrantyController.Lookup)
	api.Post("/warranty/activate", warrantyController.Activate)
	api.Post("/warranty/check", warrantyController.CheckWarranty)
	api.Post("/repairs", warrantyController.ReportFault)
}
