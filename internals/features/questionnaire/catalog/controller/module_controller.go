package controller

import (
	"errors"

	"relationnel_backend/internals/features/questionnaire/catalog/dto"
	"relationnel_backend/internals/features/questionnaire/catalog/model"
	helper "relationnel_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validateCatalog = validator.New()

type ModuleController struct {
	DB *gorm.DB
}

func NewModuleController(db *gorm.DB) *ModuleController {
	return &ModuleController{DB: db}
}

// =======================
// 📄 Get Modules (public, ordered, with ordered questions)
// Query: ?active=1 keeps only active modules
// =======================
func (ctrl *ModuleController) GetModules(c *fiber.Ctx) error {
	q := ctrl.DB.
		Scopes(model.OrderedModules, model.WithOrderedQuestions)
	if c.Query("active") == "1" || c.Query("active") == "true" {
		q = q.Where("module_is_active = ?", true)
	}

	var modules []model.ModuleModel
	if err := q.Find(&modules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve modules")
	}

	resp := make([]dto.ModuleDTO, 0, len(modules))
	for _, m := range modules {
		resp = append(resp, dto.ToModuleDTO(m))
	}
	return helper.JsonOK(c, "Modules retrieved", resp)
}

// =======================
// 🔍 Get Module by ID (with ordered questions)
// =======================
func (ctrl *ModuleController) GetModule(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid module id")
	}

	var m model.ModuleModel
	if err := ctrl.DB.
		Scopes(model.WithOrderedQuestions).
		First(&m, "module_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Module not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve module")
	}
	return helper.JsonOK(c, "Module retrieved", dto.ToModuleDTO(m))
}

// =======================
// 🔍 Get Questions of a Module (ordered)
// =======================
func (ctrl *ModuleController) GetModuleQuestions(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid module id")
	}

	var exists int64
	if err := ctrl.DB.Model(&model.ModuleModel{}).
		Where("module_id = ?", id).
		Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check module")
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Module not found")
	}

	var questions []model.QuestionModel
	if err := ctrl.DB.
		Scopes(model.OrderedQuestions).
		Where("question_module_id = ?", id).
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve questions")
	}

	resp := make([]dto.QuestionDTO, 0, len(questions))
	for _, q := range questions {
		resp = append(resp, dto.ToQuestionDTO(q))
	}
	return helper.JsonOK(c, "Questions retrieved", resp)
}

// =======================
// 📄 Get All Modules (admin, paginated)
// Query: ?page=1&per_page=50
// =======================
func (ctrl *ModuleController) GetAllModules(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.AdminOpts)

	var total int64
	if err := ctrl.DB.Model(&model.ModuleModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count modules")
	}

	var modules []model.ModuleModel
	if err := ctrl.DB.
		Scopes(model.OrderedModules).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&modules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve modules")
	}

	resp := make([]dto.ModuleDTO, 0, len(modules))
	for _, m := range modules {
		resp = append(resp, dto.ToModuleDTO(m))
	}

	meta := helper.BuildMeta(total, p)
	return helper.JsonList(c, "Modules retrieved", resp, &meta)
}

// =======================
// ➕ Create Module (admin)
// =======================
func (ctrl *ModuleController) CreateModule(c *fiber.Ctx) error {
	var body dto.CreateModuleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCatalog.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	isActive := true
	if body.ModuleIsActive != nil {
		isActive = *body.ModuleIsActive
	}

	m := model.ModuleModel{
		ModuleTitle:       body.ModuleTitle,
		ModuleDescription: body.ModuleDescription,
		ModuleOrder:       body.ModuleOrder,
		ModuleIsActive:    isActive,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create module")
	}
	return helper.JsonCreated(c, "Module created", dto.ToModuleDTO(m))
}

// =======================
// ✏️ Update Module (admin, partial)
// =======================
func (ctrl *ModuleController) UpdateModule(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid module id")
	}

	var body dto.UpdateModuleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCatalog.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var m model.ModuleModel
	if err := ctrl.DB.First(&m, "module_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Module not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve module")
	}

	if body.ModuleTitle != nil {
		m.ModuleTitle = *body.ModuleTitle
	}
	if body.ModuleDescription != nil {
		m.ModuleDescription = *body.ModuleDescription
	}
	if body.ModuleOrder != nil {
		m.ModuleOrder = *body.ModuleOrder
	}
	if body.ModuleIsActive != nil {
		m.ModuleIsActive = *body.ModuleIsActive
	}

	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update module")
	}
	return helper.JsonUpdated(c, "Module updated", dto.ToModuleDTO(m))
}

// =======================
// 🗑️ Delete Module (admin, cascades to questions)
// =======================
func (ctrl *ModuleController) DeleteModule(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid module id")
	}

	res := ctrl.DB.Delete(&model.ModuleModel{}, "module_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete module")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Module not found")
	}
	return helper.JsonDeleted(c, "Module deleted", fiber.Map{"module_id": id.String()})
}
