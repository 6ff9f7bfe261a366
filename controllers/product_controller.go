package controllers

import (
	"errors"
	"strconv"
	"time"
	"warranty-app/middleware"
	"warranty-app/models"
	"warranty-app/repositories"
	"warranty-app/services"
	"warranty-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(DB *gorm.DB) *ProductController {
	return &ProductController{DB: DB}
}

func (c *ProductController) CreateProduct(ctx *fiber.Ctx) error {
	var input struct {
		QRCodeID      string `json:"qrcode_id" validate:"required,max=16"`
		ProductTypeID uint   `json:"product_type_id" validate:"required"`
		Remark        string `json:"remark"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewProductRepository(c.DB)
	product, err := repo.Create(input.QRCodeID, input.ProductTypeID, input.Remark, middleware.OperatorLabel(ctx))
	if err != nil {
		return repoError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Product created successfully", "data": product})
}

func (c *ProductController) BulkCreateProducts(ctx *fiber.Ctx) error {
	var input struct {
		ProductTypeID uint     `json:"product_type_id" validate:"required"`
		QRCodeIDs     []string `json:"qrcode_ids" validate:"required,min=1,dive,required,max=16"`
		Remark        string   `json:"remark"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewProductRepository(c.DB)
	created, skipped, err := repo.BulkCreate(input.ProductTypeID, input.QRCodeIDs, input.Remark, middleware.OperatorLabel(ctx))
	if err != nil {
		return repoError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Bulk create finished",
		"data": fiber.Map{
			"created_count": len(created),
			"skipped":       skipped,
		},
	})
}

// GenerateProducts creates a batch of units under fresh random qrcode ids
// and returns the factory label sheet (xlsx with embedded QR images).
func (c *ProductController) GenerateProducts(ctx *fiber.Ctx) error {
	var input struct {
		ProductTypeID uint   `json:"product_type_id" validate:"required"`
		Count         int    `json:"count" validate:"required,min=1,max=500"`
		Remark        string `json:"remark"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	codes, err := utils.GenerateCodes(input.Count)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate codes"})
	}

	repo := repositories.NewProductRepository(c.DB)
	created, skipped, err := repo.BulkCreate(input.ProductTypeID, codes, input.Remark, middleware.OperatorLabel(ctx))
	if err != nil {
		return repoError(ctx, err)
	}

	// Generated codes that collided with existing units are left out of the
	// sheet; the skipped count travels in a response header.
	sheetCodes := make([]string, 0, len(created))
	typeName := ""
	for _, product := range created {
		sheetCodes = append(sheetCodes, product.QRCodeID)
	}
	var productType models.ProductType
	if err := c.DB.First(&productType, input.ProductTypeID).Error; err == nil {
		typeName = productType.Name
	}
	if len(skipped) > 0 {
		ctx.Set("X-Skipped-Count", strconv.Itoa(len(skipped)))
	}

	buf, err := utils.BuildQRSheet(sheetCodes, typeName)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to build label sheet"})
	}

	filename := "qr-batch-" + time.Now().Format("20060102-150405") + ".xlsx"
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return ctx.Send(buf.Bytes())
}

func (c *ProductController) BulkShipping(ctx *fiber.Ctx) error {
	var input struct {
		QRCodeIDs    []string `json:"qrcode_ids" validate:"required,min=1"`
		AgentID      uint     `json:"agent_id" validate:"required"`
		ShippingDate string   `json:"shipping_date"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var shippingDate *time.Time
	if input.ShippingDate != "" {
		parsed, err := services.ParseClientTime(input.ShippingDate)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid shipping_date"})
		}
		shippingDate = &parsed
	}

	repo := repositories.NewProductRepository(c.DB)
	count, err := repo.BulkShip(input.QRCodeIDs, input.AgentID, shippingDate, middleware.OperatorLabel(ctx))
	if err != nil {
		return repoError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Shipping finished",
		"data":    fiber.Map{"updated_count": count},
	})
}

func (c *ProductController) ActivateProduct(ctx *fiber.Ctx) error {
	var input struct {
		QRCodeID  string `json:"qrcode_id" validate:"required,max=16"`
		Name      string `json:"name" validate:"required"`
		Phone     string `json:"phone"`
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
	}, input.Installer, middleware.OperatorLabel(ctx))
	if err != nil {
		return repoError(ctx, err)
	}

	utils.SendActivationMail(product.Email, product.Name, product.QRCodeID, product.WarrantyEndDate)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Product activated successfully", "data": product})
}

func (c *ProductController) ScrapProduct(ctx *fiber.Ctx) error {
	var input struct {
		QRCodeID string `json:"qrcode_id" validate:"required,max=16"`
		Reason   string `json:"reason"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewProductRepository(c.DB)
	product, err := repo.Scrap(input.QRCodeID, input.Reason, middleware.OperatorLabel(ctx))
	if err != nil {
		return repoError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Product scrapped", "data": product})
}

func (c *ProductController) CheckWarranty(ctx *fiber.Ctx) error {
	var input struct {
		QRCodeID      string `json:"qrcode_id"`
		CustomerEmail string `json:"customer_email"`
		CustomerPhone string `json:"customer_phone"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewProductRepository(c.DB)
	products, err := repo.SearchForWarranty(input.QRCodeID, input.CustomerEmail, input.CustomerPhone)
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
			"active_now":     services.ActiveAt(now, product.WarrantyStartDate, product.WarrantyEndDate),
			"warranty_start": product.WarrantyStartDate,
			"warranty_end":   product.WarrantyEndDate,
			"status":         models.StatusLabel(product.Status),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": results})
}

func (c *ProductController) GetByQRCode(ctx *fiber.Ctx) error {
	qrcodeID := ctx.Query("qrcode_id")
	if qrcodeID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "qrcode_id parameter is required"})
	}

	repo := repositories.NewProductRepository(c.DB)
	product, err := repo.GetByQRCode(qrcodeID)
	if err != nil {
		return repoError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Product found", "data": product})
}

func (c *ProductController) GetAllProducts(ctx *fiber.Ctx) error {
	limit, offset := paginate(ctx)

	filter := repositories.ProductFilter{
		Status:        ctx.QueryInt("status", 0),
		ProductTypeID: uint(ctx.QueryInt("product_type_id", 0)),
		AgentID:       uint(ctx.QueryInt("agent_id", 0)),
		Search:        ctx.Query("search"),
	}

	repo := repositories.NewProductRepository(c.DB)
	products, total, err := repo.List(filter, limit, offset)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": products, "total": total})
}

// GetProductOperations lists the audit trail of one unit, oldest first.
func (c *ProductController) GetProductOperations(ctx *fiber.Ctx) error {
	qrcodeID := ctx.Params("qrcode")
	if qrcodeID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "qrcode is required"})
	}

	productRepo := repositories.NewProductRepository(c.DB)
	product, err := productRepo.GetByQRCode(qrcodeID)
	if err != nil {
		return repoError(ctx, err)
	}

	operationRepo := repositories.NewOperationRepository(c.DB)
	records, err := operationRepo.ListByProduct(product.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No records found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": records})
}
