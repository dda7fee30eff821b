package route

import (
	"relationnel_backend/internals/features/questionnaire/catalog/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CatalogUserRoutes(api fiber.Router, db *gorm.DB) {
	moduleCtrl := controller.NewModuleController(db)

	modules := api.Group("/modules")
	modules.Get("/", moduleCtrl.GetModules)
	modules.Get("/:id", moduleCtrl.GetModule)
	modules.Get("/:id/questions", moduleCtrl.GetModuleQuestions)
}
