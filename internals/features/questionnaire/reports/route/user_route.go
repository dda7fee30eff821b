package route

import (
	"relationnel_backend/internals/features/insight"
	"relationnel_backend/internals/features/questionnaire/reports/controller"
	reportService "relationnel_backend/internals/features/questionnaire/reports/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ReportRoutes(api fiber.Router, db *gorm.DB, store reportService.ReportStore, gen *insight.Generator, sessions controller.SessionSource) {
	reportCtrl := controller.NewReportController(db, store, gen, sessions)

	reports := api.Group("/reports")
	reports.Get("/:sessionId", reportCtrl.GetReport)
	reports.Post("/:sessionId", reportCtrl.UpsertReport)
	reports.Get("/:sessionId/pdf", reportCtrl.DownloadReportPDF)
}
