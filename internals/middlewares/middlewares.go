package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"presenca_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain for every request.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(RateLimiterMiddleware())
}
