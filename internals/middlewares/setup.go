package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMW "practicals_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware chain in order:
// recovery → logger → CORS → global rate limit.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(loggerMW.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
