package controllers

import (
	"errors"
	"warranty-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProductTypeController struct {
	DB *gorm.DB
}

func NewProductTypeController(DB *gorm.DB) *ProductTypeController {
	return &ProductTypeController{DB: DB}
}

type productTypeInput struct {
	Name           string `json:"name" validate:"required"`
	ModelNumber    string `json:"model_number" validate:"required"`
	Specifications string `json:"specifications"`
	Description    string `json:"description"`
	WarrantyPeriod int    `json:"warranty_period" validate:"omitempty,min=1"`
}

func (c *ProductTypeController) CreateProductType(ctx *fiber.Ctx) error {
	var input productTypeInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	warrantyPeriod := input.WarrantyPeriod
	if warrantyPeriod == 0 {
		warrantyPeriod = 1095
	}

	productType := models.ProductType{
		Name:           input.Name,
		ModelNumber:    input.ModelNumber,
		Specifications: input.Specifications,
		Description:    input.Description,
		WarrantyPeriod: warrantyPeriod,
	}

	if err := c.DB.Create(&productType).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Product type created successfully", "data": productType})
}

func (c *ProductTypeController) GetProductTypeByID(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var productType models.ProductType
	if err := c.DB.First(&productType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product type not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": productType})
}

func (c *ProductTypeController) GetAllProductTypes(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.ProductType{})
	if search := ctx.Query("search"); search != "" {
		query = query.Where("name LIKE ? OR model_number LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var productTypes []models.ProductType
	if err := query.Order("created_at DESC").Find(&productTypes).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": productTypes})
}

func (c *ProductTypeController) UpdateProductType(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var productType models.ProductType
	if err := c.DB.First(&productType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product type not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input productTypeInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	productType.Name = input.Name
	productType.ModelNumber = input.ModelNumber
	productType.Specifications = input.Specifications
	productType.Description = input.Description
	if input.WarrantyPeriod > 0 {
		productType.WarrantyPeriod = input.WarrantyPeriod
	}

	if err := c.DB.Save(&productType).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Product type updated successfully", "data": productType})
}

// DeleteProductType cascades to every product referencing the type. Without
// confirm=true it only reports how many units would be destroyed.
func (c *ProductTypeController) DeleteProductType(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var productType models.ProductType
	if err := c.DB.First(&productType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Product type not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var productCount int64
	if err := c.DB.Model(&models.Product{}).Where("product_type_id = ?", productType.ID).Count(&productCount).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if ctx.Query("confirm") != "true" {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": false,
			"message": "Deleting this product type will also delete all its products. Repeat with confirm=true to proceed.",
			"data":    fiber.Map{"product_count": productCount},
		})
	}

	err = c.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_type_id = ?", productType.ID).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		return tx.Delete(&productType).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Product type deleted",
		"data":    fiber.Map{"deleted_products": productCount},
	})
}
