package controller

import (
	"relationnel_backend/internals/features/questionnaire/users/dto"
	"relationnel_backend/internals/features/questionnaire/users/service"
	helper "relationnel_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateUser = validator.New()

type UserController struct {
	Service *service.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{Service: service.NewUserService(service.NewGormUserStore(db))}
}

// =======================
// ➕ Find-or-create User by email
// =======================
func (ctrl *UserController) FindOrCreateUser(c *fiber.Ctx) error {
	var body dto.FindOrCreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateUser.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	u, created, err := ctrl.Service.FindOrCreateByEmail(c.UserContext(), body.UserEmail, body.UserName)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve user")
	}
	if created {
		return helper.JsonCreated(c, "User created", dto.ToUserDTO(*u))
	}
	return helper.JsonOK(c, "User retrieved", dto.ToUserDTO(*u))
}
