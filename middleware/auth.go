package middleware

import (
	"strings"
	"warranty-app/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func AuthMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if authHeader == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Missing Authorization header",
		})
	}

	tokenParts := strings.Split(authHeader, " ")
	if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Invalid Authorization header format",
		})
	}

	token, err := jwt.Parse(tokenParts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized: Invalid signing method")
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized: Invalid token",
			"error":   err.Error(),
		})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized: Invalid token",
		})
	}

	if _, ok := claims["exp"].(float64); !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized: Invalid expiration time",
		})
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized: Invalid user ID",
		})
	}

	username, ok := claims["username"].(string)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized: Invalid username",
		})
	}

	userType, _ := claims["user_type"].(float64)
	isAdmin, _ := claims["is_admin"].(bool)

	ctx.Locals("userID", userID)
	ctx.Locals("username", username)
	ctx.Locals("userType", int(userType))
	ctx.Locals("isAdmin", isAdmin)
	ctx.Locals("userData", claims)

	return ctx.Next()
}

// RequireAdmin guards the destructive endpoints (user management, product
// type deletion, access codes).
func RequireAdmin(ctx *fiber.Ctx) error {
	isAdmin, ok := ctx.Locals("isAdmin").(bool)
	if !ok || !isAdmin {
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden: admin only",
		})
	}
	return ctx.Next()
}

// OperatorLabel builds the free-text operator tag stored on audit rows.
func OperatorLabel(ctx *fiber.Ctx) string {
	username, ok := ctx.Locals("username").(string)
	if !ok || username == "" {
		return "user-unknown"
	}
	return "user-" + username
}
