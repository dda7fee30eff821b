package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"relationnel_backend/internals/features/insight"
	"relationnel_backend/internals/features/questionnaire/reports/model"
)

var ErrReportNotFound = errors.New("report not found")

// ReportStore keeps exactly one report per session: create-if-absent,
// overwrite-if-present.
type ReportStore interface {
	UpsertForSession(ctx context.Context, sessionID uuid.UUID, content string, source []insight.QA) error
	GetBySession(ctx context.Context, sessionID uuid.UUID) (*model.GeneratedReportModel, error)
}

// =======================
// GORM store
// =======================

type GormReportStore struct {
	DB *gorm.DB
}

func NewGormReportStore(db *gorm.DB) *GormReportStore {
	return &GormReportStore{DB: db}
}

func (s *GormReportStore) UpsertForSession(ctx context.Context, sessionID uuid.UUID, content string, source []insight.QA) error {
	var snapshot datatypes.JSON
	if len(source) > 0 {
		b, err := json.Marshal(source)
		if err != nil {
			return err
		}
		snapshot = datatypes.JSON(b)
	}

	report := model.GeneratedReportModel{
		ReportSessionID: sessionID,
		ReportContent:   content,
		ReportSource:    snapshot,
	}

	// Single-row upsert on the session id; content is written whole or not
	// at all.
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "report_session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"report_content", "report_source", "report_updated_at"}),
	}).Create(&report).Error
}

func (s *GormReportStore) GetBySession(ctx context.Context, sessionID uuid.UUID) (*model.GeneratedReportModel, error) {
	var report model.GeneratedReportModel
	if err := s.DB.WithContext(ctx).
		First(&report, "report_session_id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}
