// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"relationnel_backend/internals/configs"
	"relationnel_backend/internals/features/insight"
	catalogRoute "relationnel_backend/internals/features/questionnaire/catalog/route"
	reportService "relationnel_backend/internals/features/questionnaire/reports/service"
	reportRoute "relationnel_backend/internals/features/questionnaire/reports/route"
	sessionService "relationnel_backend/internals/features/questionnaire/sessions/service"
	sessionRoute "relationnel_backend/internals/features/questionnaire/sessions/route"
	userRoute "relationnel_backend/internals/features/questionnaire/users/route"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// Shared services: one provider client, injected where needed.
	provider := insight.NewOpenRouterProvider(
		configs.OpenRouterAPIKey,
		configs.OpenRouterBaseURL,
		configs.AppURL,
	)
	generator := insight.NewGenerator(provider)
	reports := reportService.NewGormReportStore(db)
	sessions := sessionService.NewSessionService(
		sessionService.NewGormSubmissionStore(db),
		reports,
		generator,
	)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")
	catalogRoute.CatalogUserRoutes(public, db)
	userRoute.UserRoutes(public, db)
	sessionRoute.SessionRoutes(public, sessions)
	reportRoute.ReportRoutes(public, db, reports, generator, sessions)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a")
	catalogRoute.CatalogAdminRoutes(admin, db)
}
