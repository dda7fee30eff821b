package model

import (
	"time"

	"github.com/google/uuid"

	catalogModel "relationnel_backend/internals/features/questionnaire/catalog/model"
)

// ResponseModel rows are immutable once created. The question reference is
// deliberately not constrained: deleting a catalog question must not touch
// session history, so the relation may stop resolving.
type ResponseModel struct {
	ResponseID         uuid.UUID  `gorm:"column:response_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"response_id"`
	ResponseSessionID  uuid.UUID  `gorm:"column:response_session_id;type:uuid;not null;index" json:"response_session_id"`
	ResponseQuestionID uuid.UUID  `gorm:"column:response_question_id;type:uuid;not null" json:"response_question_id"`
	ResponseUserID     *uuid.UUID `gorm:"column:response_user_id;type:uuid" json:"response_user_id,omitempty"`
	ResponseAnswer     string     `gorm:"column:response_answer;type:text;not null" json:"response_answer"`

	ResponseCreatedAt time.Time `gorm:"column:response_created_at;autoCreateTime" json:"response_created_at"`

	ResponseQuestion *catalogModel.QuestionModel `gorm:"foreignKey:ResponseQuestionID;references:QuestionID" json:"response_question,omitempty"`
}

func (ResponseModel) TableName() string { return "responses" }
