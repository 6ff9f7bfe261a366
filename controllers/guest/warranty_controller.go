package guest

import (
	"time"

	"warranty-app/models"
	"warranty-app/repositories"
	"warranty-app/services"
	"warranty-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// WarrantyController serves the unauthenticated self-service flow: a
// customer scans the QR label, activates the unit, checks warranty status
// or reports a fault. Every route sits behind the access-code middleware.
type WarrantyController struct {
	DB *gorm.DB
}

func NewWarrantyController(DB *gorm.DB) *WarrantyController {
	return &WarrantyController{DB: DB}
}

// Lookup returns what the scanned code refers to. The response shape depends
// on the unit's status: an ACTIVATED unit gets its warranty window, a SHIPPED
// unit gets an activation prompt, anything else just reports its status.
func (c *WarrantyController) Lookup(ctx *fiber.Ctx) error {
	qrcodeID := ctx.Params("qrcode")

	repo := repositories.NewProductRepository(c.DB)
	product, err := repo.GetByQRCode(qrcodeID)
	if err != nil {
		return repoError(ctx, err)
	}

	typeName := ""
	warrantyPeriod := 0
	if product.ProductType != nil {
		typeName = product.ProductType.Name
		warrantyPeriod = product.ProductType.WarrantyPeriod
	}

	switch product.Status {
	case models.StatusActivated, models.StatusInRepair:
		now := time.Now()
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"data": fiber.Map{
				"qrcode_id":       product.QRCodeID,
				"product_type":    typeName,
				"status":          models.StatusLabel(product.Status),
				"activation_date": product.ActivationDate,
				"warranty_start":  product.WarrantyStartDate,
				"warranty_end":    product.WarrantyEndDate,
				"under_warranty":  services.UnderWarranty(now, product.WarrantyStartDate, product.WarrantyEndDate),
				"customer_name":   product.Name,
			},
		})
	case models.StatusShipped:
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"data": fiber.Map{
				"qrcode_id":           product.QRCodeID,
				"product_type":        typeName,
				"status":              models.StatusLabel(product.Status),
				"warranty_period":     warrantyPeriod,
				"activation_required": true,
			},
		})
	default:
		// GENERATED units never left the factory and SCRAPPED ones are
		// gone; neither has a warranty story to show.
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":  "Product is not available for warranty service",
			"status": models.StatusLabel(product.Status),
		})
	}
}

// Activate registers a SHIPPED unit to the customer filling in the form.
func (c *WarrantyController) Activate(ctx *fiber.Ctx) error {
	var input struct {
		QRCodeID  string `json:"qrcode_id" validate:"required,max=16"`
		Name      string `json:"name" validate:"required"`
		Phone     string `json:"phone" validate:"required"`
		Email     string `json:"email" validate:"omitempty,email"`
		City      string `json:"city"`
		Country   string `json:"country"`
		Installer string `json:"installer"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewProductRepository(c.DB)
	product, err := repo.Activate(input.QRCodeID, repositories.CustomerContact{
		Name:    input.Name,
		Phone:   input.Phone,
		Email:   input.Email,
		City:    input.City,
		Country: input.Country,
	}, input.Installer, "client-"+input.Name)
	if err != nil {
		return repoError(ctx, err)
	}

	utils.SendActivationMail(product.Email, product.Name, product.QRCodeID, product.WarrantyEndDate)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Product activated successfully",
		"data": fiber.Map{
			"qrcode_id":      product.QRCodeID,
			"status":         models.StatusLabel(product.Status),
			"warranty_start": product.WarrantyStartDate,
			"warranty_end":   product.WarrantyEndDate,
		},
	})
}

// CheckWarranty answers warranty questions for guests by qrcode, email or
// phone. At least one parameter is required.
func (c *WarrantyController) CheckWarranty(ctx *fiber.Ctx) error {
	var input struct {
		QRCodeID string `json:"qrcode_id"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewProductRepository(c.DB)
	products, err := repo.SearchForWarranty(input.QRCodeID, input.Email, input.Phone)
	if err != nil {
		return repoError(ctx, err)
	}

	now := time.Now()
	results := make([]fiber.Map, 0, len(products))
	for _, product := range products {
		typeName := ""
		if product.ProductType != nil {
			typeName = product.ProductType.Name
		}
		results = append(results, fiber.Map{
			"qrcode_id":      product.QRCodeID,
			"product_type":   typeName,
			"under_warranty": services.UnderWarranty(now, product.WarrantyStartDate, product.WarrantyEndDate),
			"warranty_start": product.WarrantyStartDate,
			"warranty_end":   product.WarrantyEndDate,
			"status":         models.StatusLabel(product.Status),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": results})
}

// ReportFault opens a repair on behalf of the customer.
func (c *WarrantyController) ReportFault(ctx *fiber.Ctx) error {
	var input struct {
		QRCodeID string `json:"qrcode_id" validate:"required,max=16"`
		Reason   string `json:"reason" validate:"required"`
		Name     string `json:"name" validate:"required"`
		Phone    string `json:"phone"`
		Email    string `json:"email" validate:"omitempty,email"`
		City     string `json:"city"`
		Country  string `json:"country"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewRepairRepository(c.DB)
	record, err := repo.Open(repositories.RepairRequest{
		QRCodeID: input.QRCodeID,
		Reason:   input.Reason,
		Contact: repositories.CustomerContact{
			Name:    input.Name,
			Phone:   input.Phone,
			Email:   input.Email,
			City:    input.City,
			Country: input.Country,
		},
	}, "client-"+input.Name)
	if err != nil {
		return repoError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Repair request received",
		"data": fiber.Map{
			"repair_id": record.ID,
			"status":    record.Status,
		},
	})
}
