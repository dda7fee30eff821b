package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GeneratedReportModel is 1:1 with a session: the unique index on
// report_session_id makes the upsert a single-row overwrite, never a
// second row.
type GeneratedReportModel struct {
	ReportID        uuid.UUID `gorm:"column:report_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"report_id"`
	ReportSessionID uuid.UUID `gorm:"column:report_session_id;type:uuid;not null;uniqueIndex" json:"report_session_id"`
	ReportContent   string    `gorm:"column:report_content;type:text;not null" json:"report_content"`
	ReportPDFURL    *string   `gorm:"column:report_pdf_url;type:text" json:"report_pdf_url,omitempty"`

	// Snapshot of the ordered QA pairs the report was generated from, so a
	// regeneration does not depend on the catalog still being intact.
	ReportSource datatypes.JSON `gorm:"column:report_source;type:jsonb" json:"report_source,omitempty"`

	ReportCreatedAt time.Time `gorm:"column:report_created_at;autoCreateTime" json:"report_created_at"`
	ReportUpdatedAt time.Time `gorm:"column:report_updated_at;autoUpdateTime" json:"report_updated_at"`
}

func (GeneratedReportModel) TableName() string { return "generated_reports" }
