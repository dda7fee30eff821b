package model

import (
	"time"

	"github.com/google/uuid"
)

type SessionModel struct {
	SessionID     uuid.UUID  `gorm:"column:session_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"session_id"`
	SessionUserID *uuid.UUID `gorm:"column:session_user_id;type:uuid" json:"session_user_id,omitempty"`

	SessionCreatedAt time.Time `gorm:"column:session_created_at;autoCreateTime" json:"session_created_at"`
	SessionUpdatedAt time.Time `gorm:"column:session_updated_at;autoUpdateTime" json:"session_updated_at"`

	SessionResponses []ResponseModel `gorm:"foreignKey:ResponseSessionID;references:SessionID;constraint:OnDelete:CASCADE" json:"session_responses,omitempty"`
}

func (SessionModel) TableName() string { return "sessions" }
