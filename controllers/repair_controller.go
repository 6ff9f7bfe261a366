package controllers

import (
	"strconv"
	"warranty-app/middleware"
	"warranty-app/models"
	"warranty-app/repositories"
	"warranty-app/types"
	"warranty-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RepairController struct {
	DB *gorm.DB
}

func NewRepairController(DB *gorm.DB) *RepairController {
	return &RepairController{DB: DB}
}

func (c *RepairController) OpenRepair(ctx *fiber.Ctx) error {
	var input struct {
		QRCodeID     string `json:"qrcode_id" validate:"required,max=16"`
		Reason       string `json:"reason" validate:"required"`
		TechnicianID *uint  `json:"technician_id"`
		Name         string `json:"name"`
		Phone        string `json:"phone"`
		Email        string `json:"email" validate:"omitempty,email"`
		City         string `json:"city"`
		Country      string `json:"country"`
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
		QRCodeID:     input.QRCodeID,
		Reason:       input.Reason,
		TechnicianID: input.TechnicianID,
		Contact: repositories.CustomerContact{
			Name:    input.Name,
			Phone:   input.Phone,
			Email:   input.Email,
			City:    input.City,
			Country: input.Country,
		},
	}, middleware.OperatorLabel(ctx))
	if err != nil {
		return repoError(ctx, err)
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Repair opened", "data": record})
}

func (c *RepairController) CompleteRepair(ctx *fiber.Ctx) error {
	recordID, err := parseRecordID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid record ID"})
	}

	var input struct {
		Solution string `json:"solution" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewRepairRepository(c.DB)
	record, err := repo.Complete(recordID, input.Solution, middleware.OperatorLabel(ctx))
	if err != nil {
		return repoError(ctx, err)
	}

	if record.Product != nil {
		utils.SendRepairDoneMail(record.CustomerEmail, record.CustomerName, record.Product.QRCodeID, input.Solution)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Repair completed", "data": record})
}

func (c *RepairController) MarkUnrepairable(ctx *fiber.Ctx) error {
	recordID, err := parseRecordID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid record ID"})
	}

	var input struct {
		Note string `json:"note"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	repo := repositories.NewRepairRepository(c.DB)
	record, err := repo.MarkUnrepairable(recordID, input.Note, middleware.OperatorLabel(ctx))
	if err != nil {
		return repoError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Repair closed as unrepairable", "data": record})
}

func (c *RepairController) GetRepairByID(ctx *fiber.Ctx) error {
	recordID, err := parseRecordID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid record ID"})
	}

	repo := repositories.NewRepairRepository(c.DB)
	record, err := repo.GetByID(recordID)
	if err != nil {
		return repoError(ctx, err)
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": record})
}

func (c *RepairController) GetAllRepairs(ctx *fiber.Ctx) error {
	limit, offset := paginate(ctx)

	filter := repositories.RepairFilter{
		ProductID:    uint(ctx.QueryInt("product_id", 0)),
		TechnicianID: uint(ctx.QueryInt("technician_id", 0)),
		Status:       ctx.QueryInt("status", 0),
	}

	repo := repositories.NewRepairRepository(c.DB)
	records, total, err := repo.List(filter, limit, offset)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": records, "total": total})
}

// GetRepairAttachments lists the files attached to one repair record.
func (c *RepairController) GetRepairAttachments(ctx *fiber.Ctx) error {
	recordID, err := parseRecordID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid record ID"})
	}

	var attachments []models.Attachment
	if err := c.DB.Where("entity_kind = ? AND entity_id = ?", models.EntityRepairRecord, int64(recordID)).
		Order("created_at ASC").Find(&attachments).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": attachments})
}

// AddRepairAttachment attaches a file URL to one repair record.
func (c *RepairController) AddRepairAttachment(ctx *fiber.Ctx) error {
	recordID, err := parseRecordID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid record ID"})
	}

	repo := repositories.NewRepairRepository(c.DB)
	if _, err := repo.GetByID(recordID); err != nil {
		return repoError(ctx, err)
	}

	var input struct {
		Name        string `json:"name" validate:"required"`
		FileURL     string `json:"file_url" validate:"required,url"`
		FileType    int    `json:"file_type" validate:"omitempty,min=1,max=4"`
		Description string `json:"description"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	fileType := input.FileType
	if fileType == 0 {
		fileType = models.FileTypeOther
	}

	attachment := models.Attachment{
		Name:        input.Name,
		FileURL:     input.FileURL,
		FileType:    fileType,
		Description: input.Description,
		EntityKind:  models.EntityRepairRecord,
		EntityID:    int64(recordID),
	}
	if err := c.DB.Create(&attachment).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Attachment added successfully", "data": attachment})
}

func parseRecordID(ctx *fiber.Ctx) (types.SnowflakeID, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return types.SnowflakeID(id), nil
}
