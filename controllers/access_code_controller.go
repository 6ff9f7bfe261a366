package controllers

import (
	"time"
	"warranty-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AccessCodeController struct {
	DB *gorm.DB
}

func NewAccessCodeController(DB *gorm.DB) *AccessCodeController {
	return &AccessCodeController{DB: DB}
}

type accessCodeInput struct {
	Code         string `json:"code" validate:"required,min=4,max=64"`
	Description  string `json:"description"`
	IsActive     *bool  `json:"is_active"`
	ValidityDays *int   `json:"validity_days"`
}

func (c *AccessCodeController) CreateAccessCode(ctx *fiber.Ctx) error {
	var input accessCodeInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var existing models.AccessCode
	if err := c.DB.Where("code = ?", input.Code).First(&existing).Error; err == nil {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Access code already exists"})
	}

	userID := int(ctx.Locals("userID").(float64))
	code := models.AccessCode{
		Code:         input.Code,
		Description:  input.Description,
		IsActive:     true,
		ValidityDays: -1,
		CreatedBy:    userID,
	}
	if input.IsActive != nil {
		code.IsActive = *input.IsActive
	}
	if input.ValidityDays != nil {
		code.ValidityDays = *input.ValidityDays
	}

	if err := c.DB.Create(&code).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Access code created successfully", "data": code})
}

func (c *AccessCodeController) GetAllAccessCodes(ctx *fiber.Ctx) error {
	var codes []models.AccessCode
	if err := c.DB.Order("created_at DESC").Find(&codes).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	now := time.Now()
	data := make([]fiber.Map, 0, len(codes))
	for _, code := range codes {
		data = append(data, fiber.Map{
			"id":            code.ID,
			"code":          code.Code,
			"description":   code.Description,
			"is_active":     code.IsActive,
			"validity_days": code.ValidityDays,
			"valid_now":     code.IsValid(now),
			"created_at":    code.CreatedAt,
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": data})
}

func (c *AccessCodeController) UpdateAccessCode(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var code models.AccessCode
	if err := c.DB.First(&code, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Access code not found"})
	}

	var input accessCodeInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Description != "" {
		code.Description = input.Description
	}
	if input.IsActive != nil {
		code.IsActive = *input.IsActive
	}
	if input.ValidityDays != nil {
		code.ValidityDays = *input.ValidityDays
	}
	code.UpdatedBy = int(ctx.Locals("userID").(float64))

	if err := c.DB.Save(&code).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Access code updated successfully", "data": code})
}

func (c *AccessCodeController) DeleteAccessCode(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var code models.AccessCode
	if err := c.DB.First(&code, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Access code not found"})
	}

	if err := c.DB.Delete(&code).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Access code deleted successfully"})
}
