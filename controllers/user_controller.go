package controllers

import (
	"errors"
	"warranty-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(DB *gorm.DB) *UserController {
	return &UserController{DB: DB}
}

func (c *UserController) CreateUser(ctx *fiber.Ctx) error {
	var userInput struct {
		Username string `json:"username" validate:"required,min=3"`
		Name     string `json:"name" validate:"required,min=3"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
		Phone    string `json:"phone"`
		UserType int    `json:"user_type" validate:"omitempty,min=1,max=3"`
		City     string `json:"city"`
		Country  string `json:"country"`
		IsAdmin  bool   `json:"is_admin"`
	}

	if err := ctx.BodyParser(&userInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(userInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var existing models.User
	if err := c.DB.Where("username = ?", userInput.Username).First(&existing).Error; err == nil {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Username already taken"})
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(userInput.Password), bcrypt.DefaultCost)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to hash password"})
	}

	userType := userInput.UserType
	if userType == 0 {
		userType = models.UserTypeEmployee
	}

	user := models.User{
		Username:  userInput.Username,
		Name:      userInput.Name,
		Email:     userInput.Email,
		Password:  string(hashedPassword),
		Phone:     userInput.Phone,
		UserType:  userType,
		City:      userInput.City,
		Country:   userInput.Country,
		IsAdmin:   userInput.IsAdmin,
		CreatedBy: int(ctx.Locals("userID").(float64)),
	}

	if err := c.DB.Create(&user).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "User created successfully",
		"data":    user,
	})
}

func (c *UserController) GetUserByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	var user models.User

	if err := c.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    user,
		"success": true,
	})
}

func (c *UserController) GetAllUsers(ctx *fiber.Ctx) error {
	var users []models.User
	query := c.DB
	if userType := ctx.QueryInt("user_type", 0); userType != 0 {
		query = query.Where("user_type = ?", userType)
	}
	if err := query.Find(&users).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"data":    users,
		"total":   len(users),
		"success": true,
	})
}

// GetAgents lists agent accounts only, for the shipping destination picker.
func (c *UserController) GetAgents(ctx *fiber.Ctx) error {
	var agents []models.User
	if err := c.DB.Where("user_type = ?", models.UserTypeAgent).Order("name ASC").Find(&agents).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"data": agents, "success": true})
}

func (c *UserController) UpdateUser(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var userInput struct {
		Username string `json:"username" validate:"required,min=3"`
		Name     string `json:"name" validate:"required,min=3"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password"`
		Phone    string `json:"phone"`
		UserType int    `json:"user_type" validate:"omitempty,min=1,max=3"`
		City     string `json:"city"`
		Country  string `json:"country"`
	}

	if err := ctx.BodyParser(&userInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(userInput); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var user models.User
	if err := c.DB.First(&user, id).Error; err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	user.Username = userInput.Username
	user.Name = userInput.Name
	user.Email = userInput.Email
	user.Phone = userInput.Phone
	user.City = userInput.City
	user.Country = userInput.Country
	if userInput.UserType != 0 {
		user.UserType = userInput.UserType
	}
	user.UpdatedBy = int(ctx.Locals("userID").(float64))

	if userInput.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(userInput.Password), bcrypt.DefaultCost)
		if err != nil {
			return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to hash password"})
		}
		user.Password = string(hashedPassword)
	}

	if err := c.DB.Save(&user).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "User updated successfully",
	})
}

func (c *UserController) DeleteUser(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid ID"})
	}

	var user models.User
	if err := c.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	user.DeletedBy = int(ctx.Locals("userID").(float64))

	result := c.DB.Select("deleted_by").Where("id = ?", id).Updates(&user)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}

	result = c.DB.Delete(&user)
	if result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": result.Error.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"message": "User deleted successfully"})
}

// Get Profile
func (c *UserController) GetProfile(ctx *fiber.Ctx) error {
	userID := int(ctx.Locals("userID").(float64))

	var userProfile struct {
		Username string `json:"username"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		UserType int    `json:"user_type"`
		IsAdmin  bool   `json:"is_admin"`
	}

	var user models.User
	if err := c.DB.First(&user, userID).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	userProfile.Username = user.Username
	userProfile.Name = user.Name
	userProfile.Email = user.Email
	userProfile.UserType = user.UserType
	userProfile.IsAdmin = user.IsAdmin
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"data": userProfile, "success": true})
}
