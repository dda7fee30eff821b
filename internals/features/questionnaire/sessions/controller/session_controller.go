package controller

import (
	"errors"

	"relationnel_backend/internals/features/questionnaire/sessions/dto"
	"relationnel_backend/internals/features/questionnaire/sessions/service"
	helper "relationnel_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validateSession = validator.New()

type SessionController struct {
	Service *service.SessionService
}

func NewSessionController(svc *service.SessionService) *SessionController {
	return &SessionController{Service: svc}
}

// =======================
// ➕ Submit Session
// =======================
// One call per completed questionnaire run: persists session + responses,
// then generates the report synchronously. The client gets the session id
// even when generation failed.
func (ctrl *SessionController) SubmitSession(c *fiber.Ctx) error {
	var body dto.SubmitSessionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSession.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	result, err := ctrl.Service.Submit(c.UserContext(), body)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create session")
	}
	return helper.JsonCreated(c, "Session created", result)
}

// =======================
// 🔍 Get Session (with responses and their questions)
// =======================
func (ctrl *SessionController) GetSession(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	sess, err := ctrl.Service.GetSession(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Session not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve session")
	}
	return helper.JsonOK(c, "Session retrieved", dto.ToSessionDTO(*sess))
}
