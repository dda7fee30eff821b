package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMw "relationnel_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the global middleware chain in order:
// recover → cors → logger → rate limiter.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMw.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
