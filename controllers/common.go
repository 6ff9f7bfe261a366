package controllers

import (
	"errors"
	"warranty-app/repositories"

	"github.com/gofiber/fiber/v2"
)

// repoErrorStatus maps the repository failure taxonomy to HTTP statuses.
func repoErrorStatus(err error) int {
	switch {
	case errors.Is(err, repositories.ErrDuplicateIdentifier):
		return fiber.StatusConflict
	case errors.Is(err, repositories.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, repositories.ErrInvalidTransition),
		errors.Is(err, repositories.ErrNoEligibleUnits),
		errors.Is(err, repositories.ErrUnknownAgent),
		errors.Is(err, repositories.ErrNoMatchingParameter):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

func repoError(ctx *fiber.Ctx, err error) error {
	return ctx.Status(repoErrorStatus(err)).JSON(fiber.Map{"error": err.Error()})
}

func paginate(ctx *fiber.Ctx) (limit, offset int) {
	limit = ctx.QueryInt("limit", 50)
	if limit < 1 || limit > 500 {
		limit = 50
	}
	page := ctx.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}
