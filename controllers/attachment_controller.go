package controllers

import (
	"warranty-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AttachmentController struct {
	DB *gorm.DB
}

func NewAttachmentController(DB *gorm.DB) *AttachmentController {
	return &AttachmentController{DB: DB}
}

func (c *AttachmentController) CreateAttachment(ctx *fiber.Ctx) error {
	var input struct {
		Name        string `json:"name" validate:"required"`
		FileURL     string `json:"file_url" validate:"required,url"`
		FileType    int    `json:"file_type" validate:"omitempty,min=1,max=4"`
		Description string `json:"description"`
		EntityKind  string `json:"entity_kind" validate:"required"`
		EntityID    int64  `json:"entity_id" validate:"required"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if !models.IsAttachableKind(input.EntityKind) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown entity kind: " + input.EntityKind})
	}

	exists, err := models.AttachmentTargetExists(c.DB, input.EntityKind, input.EntityID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !exists {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attachment target not found"})
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
		EntityKind:  input.EntityKind,
		EntityID:    input.EntityID,
		CreatedBy:   int(ctx.Locals("userID").(float64)),
	}
	if err := c.DB.Create(&attachment).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Attachment created successfully", "data": attachment})
}

// GetAttachments lists attachments for one owner, selected by the
// entity_kind and entity_id query params.
func (c *AttachmentController) GetAttachments(ctx *fiber.Ctx) error {
	kind := ctx.Query("entity_kind")
	entityID := ctx.QueryInt("entity_id", 0)

	if kind == "" || entityID == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "entity_kind and entity_id are required"})
	}
	if !models.IsAttachableKind(kind) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Unknown entity kind: " + kind})
	}

	var attachments []models.Attachment
	if err := c.DB.Where("entity_kind = ? AND entity_id = ?", kind, int64(entityID)).
		Order("created_at ASC").Find(&attachments).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": attachments})
}

func (c *AttachmentController) DeleteAttachment(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var attachment models.Attachment
	if err := c.DB.First(&attachment, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attachment not found"})
	}

	attachment.DeletedBy = int(ctx.Locals("userID").(float64))
	if err := c.DB.Save(&attachment).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if err := c.DB.Delete(&attachment).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Attachment deleted successfully"})
}
