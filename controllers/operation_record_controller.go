package controllers

import (
	"warranty-app/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OperationRecordController struct {
	DB *gorm.DB
}

func NewOperationRecordController(DB *gorm.DB) *OperationRecordController {
	return &OperationRecordController{DB: DB}
}

// GetAllOperationRecords lists audit rows, newest first. The log is
// append-only so this controller exposes reads only.
func (c *OperationRecordController) GetAllOperationRecords(ctx *fiber.Ctx) error {
	limit, offset := paginate(ctx)

	filter := repositories.OperationFilter{
		ProductID:     uint(ctx.QueryInt("product_id", 0)),
		Operator:      ctx.Query("operator"),
		OperationType: ctx.QueryInt("operation_type", 0),
	}

	repo := repositories.NewOperationRepository(c.DB)
	records, total, err := repo.List(filter, limit, offset)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": records, "total": total})
}
