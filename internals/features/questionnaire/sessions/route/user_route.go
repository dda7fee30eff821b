package route

import (
	"relationnel_backend/internals/features/questionnaire/sessions/controller"
	"relationnel_backend/internals/features/questionnaire/sessions/service"
	"relationnel_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
)

func SessionRoutes(api fiber.Router, svc *service.SessionService) {
	sessionCtrl := controller.NewSessionController(svc)

	sessions := api.Group("/sessions")
	sessions.Post("/", middlewares.SubmitRateLimiter(), sessionCtrl.SubmitSession)
	sessions.Get("/:id", sessionCtrl.GetSession)
}
