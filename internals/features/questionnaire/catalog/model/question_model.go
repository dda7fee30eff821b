package model

import (
	"time"

	"github.com/google/uuid"
)

type QuestionType string

const (
	// Only free-text questions exist today; the column is a discriminator
	// reserved for future kinds.
	QuestionTypeText QuestionType = "text"
)

type QuestionModel struct {
	QuestionID         uuid.UUID    `gorm:"column:question_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"question_id"`
	QuestionModuleID   uuid.UUID    `gorm:"column:question_module_id;type:uuid;not null;index" json:"question_module_id"`
	QuestionText       string       `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionType       QuestionType `gorm:"column:question_type;type:varchar(16);not null;default:'text'" json:"question_type"`
	QuestionOrder      int          `gorm:"column:question_order;not null;default:0" json:"question_order"`
	QuestionIsRequired bool         `gorm:"column:question_is_required;not null;default:true" json:"question_is_required"`

	QuestionCreatedAt time.Time `gorm:"column:question_created_at;autoCreateTime" json:"question_created_at"`
	QuestionUpdatedAt time.Time `gorm:"column:question_updated_at;autoUpdateTime" json:"question_updated_at"`
}

func (QuestionModel) TableName() string { return "questions" }
