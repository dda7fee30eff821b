package dto

import (
	"encoding/json"
	"time"

	"relationnel_backend/internals/features/insight"
	"relationnel_backend/internals/features/questionnaire/reports/model"
	sessionDTO "relationnel_backend/internals/features/questionnaire/sessions/dto"
)

type ReportDTO struct {
	ReportID        string       `json:"report_id"`
	ReportSessionID string       `json:"report_session_id"`
	ReportContent   string       `json:"report_content"`
	ReportPDFURL    *string      `json:"report_pdf_url,omitempty"`
	ReportSource    []insight.QA `json:"report_source,omitempty"`
	ReportCreatedAt time.Time    `json:"report_created_at"`
	ReportUpdatedAt time.Time    `json:"report_updated_at"`

	// The session the report was generated from, with its responses.
	ReportSession *sessionDTO.SessionDTO `json:"report_session,omitempty"`
}

type UpsertReportRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}

func ToReportDTO(r model.GeneratedReportModel) ReportDTO {
	out := ReportDTO{
		ReportID:        r.ReportID.String(),
		ReportSessionID: r.ReportSessionID.String(),
		ReportContent:   r.ReportContent,
		ReportPDFURL:    r.ReportPDFURL,
		ReportCreatedAt: r.ReportCreatedAt,
		ReportUpdatedAt: r.ReportUpdatedAt,
	}
	if len(r.ReportSource) > 0 {
		// Snapshot stays as stored when it doesn't parse; it's advisory.
		_ = json.Unmarshal(r.ReportSource, &out.ReportSource)
	}
	return out
}
