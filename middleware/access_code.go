package middleware

import (
	"errors"
	"time"
	"warranty-app/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AccessCodeMiddleware gates the guest self-service routes. The caller
// supplies an opaque code via the "code" query parameter or the
// X-Access-Code header; the code row must be active and inside its validity
// period (-1 = unbounded).
func AccessCodeMiddleware(db *gorm.DB) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		code := ctx.Query("code")
		if code == "" {
			code = ctx.Get("X-Access-Code")
		}
		if code == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Missing access code",
			})
		}

		var accessCode models.AccessCode
		if err := db.Where("code = ?", code).First(&accessCode).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"message": "Invalid access code",
				})
			}
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to verify access code",
			})
		}

		if !accessCode.IsValid(time.Now()) {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Access code expired or disabled",
			})
		}

		ctx.Locals("accessCode", accessCode.Code)
		return ctx.Next()
	}
}
