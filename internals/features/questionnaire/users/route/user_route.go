package route

import (
	"relationnel_backend/internals/features/questionnaire/users/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	userCtrl := controller.NewUserController(db)

	users := api.Group("/users")
	users.Post("/", userCtrl.FindOrCreateUser)
}
