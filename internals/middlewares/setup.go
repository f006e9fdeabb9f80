// file: internals/middlewares/setup.go
package middlewares

import "github.com/gofiber/fiber/v2"

// SetupMiddlewares wires the app-wide middlewares (route groups add their
// own limiter/CSRF/auth layers on top).
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
}
