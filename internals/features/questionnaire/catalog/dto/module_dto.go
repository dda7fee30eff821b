package dto

import (
	"time"

	"relationnel_backend/internals/features/questionnaire/catalog/model"
)

// ============================
// Response DTO
// ============================

type ModuleDTO struct {
	ModuleID          string        `json:"module_id"`
	ModuleTitle       string        `json:"module_title"`
	ModuleDescription string        `json:"module_description"`
	ModuleOrder       int           `json:"module_order"`
	ModuleIsActive    bool          `json:"module_is_active"`
	ModuleCreatedAt   time.Time     `json:"module_created_at"`
	ModuleUpdatedAt   time.Time     `json:"module_updated_at"`
	ModuleQuestions   []QuestionDTO `json:"module_questions,omitempty"`
}

// ============================
// Create / Update Request DTO
// ============================

type CreateModuleRequest struct {
	ModuleTitle       string `json:"module_title" validate:"required,min=3"`
	ModuleDescription string `json:"module_description" validate:"required,min=10"`
	ModuleOrder       int    `json:"module_order" validate:"gte=0"`
	ModuleIsActive    *bool  `json:"module_is_active"` // defaults to true
}

type UpdateModuleRequest struct {
	ModuleTitle       *string `json:"module_title" validate:"omitempty,min=3"`
	ModuleDescription *string `json:"module_description" validate:"omitempty,min=10"`
	ModuleOrder       *int    `json:"module_order" validate:"omitempty,gte=0"`
	ModuleIsActive    *bool   `json:"module_is_active"`
}

// ============================
// Converter
// ============================

func ToModuleDTO(m model.ModuleModel) ModuleDTO {
	out := ModuleDTO{
		ModuleID:          m.ModuleID.String(),
		ModuleTitle:       m.ModuleTitle,
		ModuleDescription: m.ModuleDescription,
		ModuleOrder:       m.ModuleOrder,
		ModuleIsActive:    m.ModuleIsActive,
		ModuleCreatedAt:   m.ModuleCreatedAt,
		ModuleUpdatedAt:   m.ModuleUpdatedAt,
	}
	for _, q := range m.ModuleQuestions {
		out.ModuleQuestions = append(out.ModuleQuestions, ToQuestionDTO(q))
	}
	return out
}
