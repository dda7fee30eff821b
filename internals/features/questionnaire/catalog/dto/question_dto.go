package dto

import (
	"time"

	"relationnel_backend/internals/features/questionnaire/catalog/model"
)

// ============================
// Response DTO
// ============================

type QuestionDTO struct {
	QuestionID         string    `json:"question_id"`
	QuestionModuleID   string    `json:"question_module_id"`
	QuestionText       string    `json:"question_text"`
	QuestionType       string    `json:"question_type"`
	QuestionOrder      int       `json:"question_order"`
	QuestionIsRequired bool      `json:"question_is_required"`
	QuestionCreatedAt  time.Time `json:"question_created_at"`
	QuestionUpdatedAt  time.Time `json:"question_updated_at"`
}

// ============================
// Create / Update Request DTO
// ============================

type CreateQuestionRequest struct {
	QuestionModuleID   string `json:"question_module_id" validate:"required,uuid4"`
	QuestionText       string `json:"question_text" validate:"required,min=5"`
	QuestionType       string `json:"question_type" validate:"required,oneof=text"`
	QuestionOrder      int    `json:"question_order" validate:"gte=0"`
	QuestionIsRequired *bool  `json:"question_is_required"` // defaults to true
}

// Updates replace the whole question, mirroring the create shape.
type UpdateQuestionRequest = CreateQuestionRequest

// ============================
// Converter
// ============================

func ToQuestionDTO(q model.QuestionModel) QuestionDTO {
	return QuestionDTO{
		QuestionID:         q.QuestionID.String(),
		QuestionModuleID:   q.QuestionModuleID.String(),
		QuestionText:       q.QuestionText,
		QuestionType:       string(q.QuestionType),
		QuestionOrder:      q.QuestionOrder,
		QuestionIsRequired: q.QuestionIsRequired,
		QuestionCreatedAt:  q.QuestionCreatedAt,
		QuestionUpdatedAt:  q.QuestionUpdatedAt,
	}
}
