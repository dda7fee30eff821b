package dto

import (
	"time"

	catalogDTO "relationnel_backend/internals/features/questionnaire/catalog/dto"
	"relationnel_backend/internals/features/questionnaire/sessions/model"
)

// ============================
// Submit Request DTO
// ============================

type SubmitResponseInput struct {
	QuestionID string `json:"question_id" validate:"required,uuid4"`
	Answer     string `json:"answer" validate:"required,min=1"`
}

type SubmitSessionRequest struct {
	UserID    *string               `json:"user_id" validate:"omitempty,uuid4"`
	Responses []SubmitResponseInput `json:"responses" validate:"required,min=1,dive"`
}

// ============================
// Response DTO
// ============================

type SubmitSessionResult struct {
	SessionID   string `json:"session_id"`
	AIGenerated bool   `json:"ai_generated"`
}

type ResponseDTO struct {
	ResponseID         string                   `json:"response_id"`
	ResponseQuestionID string                   `json:"response_question_id"`
	ResponseAnswer     string                   `json:"response_answer"`
	ResponseCreatedAt  time.Time                `json:"response_created_at"`
	ResponseQuestion   *catalogDTO.QuestionDTO  `json:"response_question,omitempty"`
}

type SessionDTO struct {
	SessionID        string        `json:"session_id"`
	SessionUserID    *string       `json:"session_user_id,omitempty"`
	SessionCreatedAt time.Time     `json:"session_created_at"`
	SessionUpdatedAt time.Time     `json:"session_updated_at"`
	SessionResponses []ResponseDTO `json:"session_responses"`
}

// ============================
// Converters
// ============================

func ToResponseDTO(r model.ResponseModel) ResponseDTO {
	out := ResponseDTO{
		ResponseID:         r.ResponseID.String(),
		ResponseQuestionID: r.ResponseQuestionID.String(),
		ResponseAnswer:     r.ResponseAnswer,
		ResponseCreatedAt:  r.ResponseCreatedAt,
	}
	if r.ResponseQuestion != nil {
		q := catalogDTO.ToQuestionDTO(*r.ResponseQuestion)
		out.ResponseQuestion = &q
	}
	return out
}

func ToSessionDTO(s model.SessionModel) SessionDTO {
	out := SessionDTO{
		SessionID:        s.SessionID.String(),
		SessionCreatedAt: s.SessionCreatedAt,
		SessionUpdatedAt: s.SessionUpdatedAt,
		SessionResponses: make([]ResponseDTO, 0, len(s.SessionResponses)),
	}
	if s.SessionUserID != nil {
		id := s.SessionUserID.String()
		out.SessionUserID = &id
	}
	for _, r := range s.SessionResponses {
		out.SessionResponses = append(out.SessionResponses, ToResponseDTO(r))
	}
	return out
}
