package catalog

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	catalogModel "relationnel_backend/internals/features/questionnaire/catalog/model"
	reportModel "relationnel_backend/internals/features/questionnaire/reports/model"
	sessionModel "relationnel_backend/internals/features/questionnaire/sessions/model"
	userModel "relationnel_backend/internals/features/questionnaire/users/model"
)

type seedQuestion struct {
	Text       string `json:"text"`
	Type       string `json:"type"`
	Order      int    `json:"order"`
	IsRequired bool   `json:"is_required"`
}

type seedModule struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Order       int            `json:"order"`
	IsActive    bool           `json:"is_active"`
	Questions   []seedQuestion `json:"questions"`
}

// SeedCatalogFromJSON clears all data and repopulates the catalog from the
// JSON file. Intended for bootstrapping and testing only.
func SeedCatalogFromJSON(db *gorm.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var modules []seedModule
	if err := json.Unmarshal(raw, &modules); err != nil {
		return err
	}

	log.Println("🌱 Seeding database...")

	return db.Transaction(func(tx *gorm.DB) error {
		// Clear existing data, children first.
		for _, m := range []interface{}{
			&sessionModel.ResponseModel{},
			&reportModel.GeneratedReportModel{},
			&sessionModel.SessionModel{},
			&catalogModel.QuestionModel{},
			&catalogModel.ModuleModel{},
			&userModel.UserModel{},
		} {
			if err := tx.Where("1 = 1").Delete(m).Error; err != nil {
				return err
			}
		}

		for _, sm := range modules {
			m := catalogModel.ModuleModel{
				ModuleTitle:       sm.Title,
				ModuleDescription: sm.Description,
				ModuleOrder:       sm.Order,
				ModuleIsActive:    sm.IsActive,
			}
			for _, sq := range sm.Questions {
				m.ModuleQuestions = append(m.ModuleQuestions, catalogModel.QuestionModel{
					QuestionText:       sq.Text,
					QuestionType:       catalogModel.QuestionType(sq.Type),
					QuestionOrder:      sq.Order,
					QuestionIsRequired: sq.IsRequired,
				})
			}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		}

		log.Printf("📊 Created %d modules", len(modules))
		return nil
	})
}
