package route

import (
	"relationnel_backend/internals/features/questionnaire/catalog/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CatalogAdminRoutes(api fiber.Router, db *gorm.DB) {
	moduleCtrl := controller.NewModuleController(db)
	questionCtrl := controller.NewQuestionController(db)

	// === ADMIN ROUTES ===
	modules := api.Group("/modules")
	modules.Get("/", moduleCtrl.GetAllModules) // 📄 paginated list
	modules.Post("/", moduleCtrl.CreateModule)
	modules.Put("/:id", moduleCtrl.UpdateModule)
	modules.Delete("/:id", moduleCtrl.DeleteModule)

	questions := api.Group("/questions")
	questions.Get("/", questionCtrl.GetAllQuestions) // 📄 paginated list, ?module_id= filter
	questions.Get("/:id", questionCtrl.GetQuestion)
	questions.Post("/", questionCtrl.CreateQuestion)
	questions.Put("/:id", questionCtrl.UpdateQuestion)
	questions.Delete("/:id", questionCtrl.DeleteQuestion)
}
