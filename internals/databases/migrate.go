package database

import (
	"log"

	catalogModel "relationnel_backend/internals/features/questionnaire/catalog/model"
	reportModel "relationnel_backend/internals/features/questionnaire/reports/model"
	sessionModel "relationnel_backend/internals/features/questionnaire/sessions/model"
	userModel "relationnel_backend/internals/features/questionnaire/users/model"
)

// Migrate keeps the schema in sync. Parents before children so the FK
// constraints can be created.
func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&catalogModel.ModuleModel{},
		&catalogModel.QuestionModel{},
		&sessionModel.SessionModel{},
		&sessionModel.ResponseModel{},
		&reportModel.GeneratedReportModel{},
	); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}
	log.Println("✅ Schema migrated.")
}
