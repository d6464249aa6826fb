package middlewares

import (
	"github.com/gofiber/fiber/v2"
)

// SetupMiddlewares registra os middlewares globais na ordem certa
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
