// file: internals/middlewares/csrf_middleware.go
package middlewares

import (
	"github.com/gofiber/fiber/v2"

	helper "kocluk_backend/internals/helpers"
)

// CSRFGuard enforces the double-submit check on every state-mutating verb.
// GET/HEAD/OPTIONS pass through. Runs before body parsing, so a failed check
// never reaches a handler.
func CSRFGuard() fiber.Handler {
	return func(c *fiber.Ctx) error {
		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead, fiber.MethodOptions:
			return c.Next()
		}
		if err := helper.CheckCSRFCookieHeader(c); err != nil {
			fe, ok := err.(*fiber.Error)
			if !ok {
				return helper.JsonError(c, fiber.StatusForbidden, "CSRF doğrulaması başarısız")
			}
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return c.Next()
	}
}
