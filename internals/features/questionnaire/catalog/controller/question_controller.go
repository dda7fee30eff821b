package controller

import (
	"errors"

	"relationnel_backend/internals/features/questionnaire/catalog/dto"
	"relationnel_backend/internals/features/questionnaire/catalog/model"
	helper "relationnel_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuestionController struct {
	DB *gorm.DB
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{DB: db}
}

// =======================
// 📄 Get All Questions (admin, paginated)
// Query: ?page=&per_page=&module_id=
// =======================
func (ctrl *QuestionController) GetAllQuestions(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, helper.AdminOpts)

	q := ctrl.DB.Model(&model.QuestionModel{})
	if moduleID := c.Query("module_id"); moduleID != "" {
		id, err := uuid.Parse(moduleID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid module_id filter")
		}
		q = q.Where("question_module_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count questions")
	}

	var questions []model.QuestionModel
	if err := q.
		Scopes(model.OrderedQuestions).
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&questions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve questions")
	}

	resp := make([]dto.QuestionDTO, 0, len(questions))
	for _, it := range questions {
		resp = append(resp, dto.ToQuestionDTO(it))
	}

	meta := helper.BuildMeta(total, p)
	return helper.JsonList(c, "Questions retrieved", resp, &meta)
}

// =======================
// 🔍 Get Question by ID
// =======================
func (ctrl *QuestionController) GetQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}

	var q model.QuestionModel
	if err := ctrl.DB.First(&q, "question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve question")
	}
	return helper.JsonOK(c, "Question retrieved", dto.ToQuestionDTO(q))
}

// =======================
// ➕ Create Question (admin)
// =======================
func (ctrl *QuestionController) CreateQuestion(c *fiber.Ctx) error {
	var body dto.CreateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCatalog.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	moduleID, err := uuid.Parse(body.QuestionModuleID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question_module_id")
	}

	var exists int64
	if err := ctrl.DB.Model(&model.ModuleModel{}).
		Where("module_id = ?", moduleID).
		Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check module")
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Module not found")
	}

	isRequired := true
	if body.QuestionIsRequired != nil {
		isRequired = *body.QuestionIsRequired
	}

	q := model.QuestionModel{
		QuestionModuleID:   moduleID,
		QuestionText:       body.QuestionText,
		QuestionType:       model.QuestionType(body.QuestionType),
		QuestionOrder:      body.QuestionOrder,
		QuestionIsRequired: isRequired,
	}
	if err := ctrl.DB.Create(&q).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create question")
	}
	return helper.JsonCreated(c, "Question created", dto.ToQuestionDTO(q))
}

// =======================
// ✏️ Update Question (admin, full replace)
// =======================
func (ctrl *QuestionController) UpdateQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}

	var body dto.UpdateQuestionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateCatalog.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var q model.QuestionModel
	if err := ctrl.DB.First(&q, "question_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve question")
	}

	moduleID, err := uuid.Parse(body.QuestionModuleID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question_module_id")
	}
	var exists int64
	if err := ctrl.DB.Model(&model.ModuleModel{}).
		Where("module_id = ?", moduleID).
		Count(&exists).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check module")
	}
	if exists == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Module not found")
	}

	q.QuestionModuleID = moduleID
	q.QuestionText = body.QuestionText
	q.QuestionType = model.QuestionType(body.QuestionType)
	q.QuestionOrder = body.QuestionOrder
	if body.QuestionIsRequired != nil {
		q.QuestionIsRequired = *body.QuestionIsRequired
	}

	if err := ctrl.DB.Save(&q).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update question")
	}
	return helper.JsonUpdated(c, "Question updated", dto.ToQuestionDTO(q))
}

// =======================
// 🗑️ Delete Question (admin)
// =======================
func (ctrl *QuestionController) DeleteQuestion(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid question id")
	}

	res := ctrl.DB.Delete(&model.QuestionModel{}, "question_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete question")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Question not found")
	}
	return helper.JsonDeleted(c, "Question deleted", fiber.Map{"question_id": id.String()})
}
