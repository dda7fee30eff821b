package controller

import (
	"context"
	"errors"
	"log"

	"relationnel_backend/internals/features/export"
	"relationnel_backend/internals/features/insight"
	"relationnel_backend/internals/features/questionnaire/reports/dto"
	"relationnel_backend/internals/features/questionnaire/reports/service"
	sessionDTO "relationnel_backend/internals/features/questionnaire/sessions/dto"
	sessionModel "relationnel_backend/internals/features/questionnaire/sessions/model"
	sessionService "relationnel_backend/internals/features/questionnaire/sessions/service"
	helper "relationnel_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validateReport = validator.New()

// SessionSource is the slice of the session service the report side needs:
// the stored session for the report payload, and the ordered (question,
// answer) pairs for regeneration.
type SessionSource interface {
	GetSession(ctx context.Context, id uuid.UUID) (*sessionModel.SessionModel, error)
	OrderedPairs(ctx context.Context, sessionID uuid.UUID) ([]insight.QA, error)
}

type ReportController struct {
	DB        *gorm.DB
	Store     service.ReportStore
	Generator *insight.Generator
	Sessions  SessionSource
	Renderer  *export.PDFRenderer
}

func NewReportController(db *gorm.DB, store service.ReportStore, gen *insight.Generator, sessions SessionSource) *ReportController {
	return &ReportController{
		DB:        db,
		Store:     store,
		Generator: gen,
		Sessions:  sessions,
		Renderer:  export.NewPDFRenderer(),
	}
}

// =======================
// 🔍 Get Report by session
// =======================
func (ctrl *ReportController) GetReport(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	report, err := ctrl.Store.GetBySession(c.UserContext(), sessionID)
	if err != nil {
		if errors.Is(err, service.ErrReportNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Report not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve report")
	}

	out := dto.ToReportDTO(*report)
	// Attach the source session with its responses and questions.
	if sess, err := ctrl.Sessions.GetSession(c.UserContext(), sessionID); err == nil {
		s := sessionDTO.ToSessionDTO(*sess)
		out.ReportSession = &s
	} else {
		log.Printf("[WARN] session lookup for report %s failed: %v", sessionID, err)
	}
	return helper.JsonOK(c, "Report retrieved", out)
}

// =======================
// ➕ Upsert Report content (create or overwrite)
// =======================
func (ctrl *ReportController) UpsertReport(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}

	var body dto.UpsertReportRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateReport.Struct(&body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	if err := ctrl.Store.UpsertForSession(c.UserContext(), sessionID, body.Content, nil); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save report")
	}
	report, err := ctrl.Store.GetBySession(c.UserContext(), sessionID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve report")
	}
	return helper.JsonOK(c, "Report saved", dto.ToReportDTO(*report))
}

// =======================
// 📄 Download Report PDF
// =======================
// Renders the stored report. When none is stored the controller tries one
// regeneration from the session's answers; if that also fails the fixed
// fallback text is rendered so the user never downloads an empty document.
func (ctrl *ReportController) DownloadReportPDF(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(c.Params("sessionId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid session id")
	}
	ctx := c.UserContext()

	content := ""
	report, err := ctrl.Store.GetBySession(ctx, sessionID)
	switch {
	case err == nil:
		content = report.ReportContent
	case errors.Is(err, service.ErrReportNotFound):
		pairs, pairErr := ctrl.Sessions.OrderedPairs(ctx, sessionID)
		if pairErr != nil {
			if errors.Is(pairErr, sessionService.ErrSessionNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Session not found")
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve session")
		}
		result := ctrl.Generator.Generate(ctx, pairs)
		if result.Success && result.Content != "" {
			content = result.Content
			if err := ctrl.Store.UpsertForSession(ctx, sessionID, result.Content, pairs); err != nil {
				log.Printf("[ERROR] report upsert for session %s failed: %v", sessionID, err)
			}
		} else {
			content = insight.FallbackReport
		}
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve report")
	}

	doc := export.BuildDocument(content, export.DefaultMeta(ctrl.recipientName(ctx, sessionID)))
	artifact, err := ctrl.Renderer.Render(doc)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to render PDF")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.DefaultFilename+`"`)
	return c.Send(artifact)
}

// recipientName resolves the display name of the session's user, when the
// session has one and the user set a name.
func (ctrl *ReportController) recipientName(ctx context.Context, sessionID uuid.UUID) *string {
	var name *string
	err := ctrl.DB.WithContext(ctx).
		Table("sessions").
		Select("users.user_name").
		Joins("JOIN users ON users.user_id = sessions.session_user_id").
		Where("sessions.session_id = ?", sessionID).
		Scan(&name).Error
	if err != nil {
		log.Printf("[WARN] recipient lookup for session %s failed: %v", sessionID, err)
		return nil
	}
	return name
}
