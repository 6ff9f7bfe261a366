package guest

import (
	"errors"
	"warranty-app/repositories"

	"github.com/gofiber/fiber/v2"
)

func repoError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, repositories.ErrDuplicateIdentifier):
		status = fiber.StatusConflict
	case errors.Is(err, repositories.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, repositories.ErrInvalidTransition),
		errors.Is(err, repositories.ErrNoEligibleUnits),
		errors.Is(err, repositories.ErrNoMatchingParameter):
		status = fiber.StatusBadRequest
	}
	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
