package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ModuleModel struct {
	ModuleID          uuid.UUID `gorm:"column:module_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"module_id"`
	ModuleTitle       string    `gorm:"column:module_title;type:varchar(160);not null" json:"module_title"`
	ModuleDescription string    `gorm:"column:module_description;type:text;not null" json:"module_description"`
	ModuleOrder       int       `gorm:"column:module_order;not null;default:0" json:"module_order"`
	ModuleIsActive    bool      `gorm:"column:module_is_active;not null;default:true" json:"module_is_active"`

	ModuleCreatedAt time.Time `gorm:"column:module_created_at;autoCreateTime" json:"module_created_at"`
	ModuleUpdatedAt time.Time `gorm:"column:module_updated_at;autoUpdateTime" json:"module_updated_at"`

	ModuleQuestions []QuestionModel `gorm:"foreignKey:QuestionModuleID;references:ModuleID;constraint:OnDelete:CASCADE" json:"module_questions,omitempty"`
}

func (ModuleModel) TableName() string { return "modules" }

// ------------------------
// Canonical ordering scopes
// ------------------------
// Traversal order is decided here, once, at the data-access boundary:
// order ascending, ties broken by id.

func OrderedModules(db *gorm.DB) *gorm.DB {
	return db.Order("module_order ASC, module_id ASC")
}

func OrderedQuestions(db *gorm.DB) *gorm.DB {
	return db.Order("question_order ASC, question_id ASC")
}

// WithOrderedQuestions preloads the question set in canonical order.
func WithOrderedQuestions(db *gorm.DB) *gorm.DB {
	return db.Preload("ModuleQuestions", OrderedQuestions)
}
