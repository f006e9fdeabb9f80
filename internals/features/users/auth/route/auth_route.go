// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kocluk_backend/internals/features/users/auth/controller"
	"kocluk_backend/internals/middlewares"
	authMw "kocluk_backend/internals/middlewares/auth"
)

// AuthRoutes mounts the session endpoints under /api/auth.
// Login endpoints sit behind the low-ceiling auth limiter.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	grp := api.Group("/auth")

	login := grp.Group("", middlewares.AuthRateLimiter())
	login.Post("/login", ctrl.Login)
	login.Post("/student/login", ctrl.StudentLogin)

	grp.Get("/csrf", ctrl.CSRF)
	// mutating session endpoints carry the double-submit guard like /api/a
	grp.Post("/refresh", middlewares.CSRFGuard(), ctrl.Refresh)
	grp.Post("/logout", middlewares.CSRFGuard(), ctrl.Logout)
	grp.Get("/me", authMw.AuthMiddleware(), ctrl.Me)
}
