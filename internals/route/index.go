// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assignmentRoute "kocluk_backend/internals/features/assignments/route"
	lessonRoute "kocluk_backend/internals/features/lessons/route"
	resourceRoute "kocluk_backend/internals/features/resources/route"
	scheduleRoute "kocluk_backend/internals/features/schedules/route"
	studentRoute "kocluk_backend/internals/features/students/route"
	authRoute "kocluk_backend/internals/features/users/auth/route"
	userRoute "kocluk_backend/internals/features/users/user/route"
	"kocluk_backend/internals/middlewares"
	authMw "kocluk_backend/internals/middlewares/auth"
)

// SetupRoutes mounts the three route groups:
//
//	/api/auth - session endpoints, auth limiter on logins
//	/api/a    - teacher & super-admin area: JWT + CSRF + read/write limiters
//	/api/s    - student self-service area: student JWT
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api")

	authRoute.AuthRoutes(api, db)

	a := api.Group("/a",
		authMw.AuthMiddleware(),
		middlewares.CSRFGuard(),
		middlewares.LenientRateLimiter(),
		middlewares.StrictRateLimiter(),
	)
	userRoute.TeacherAdminRoutes(a, db)
	studentRoute.StudentAdminRoutes(a, db)
	lessonRoute.LessonAdminRoutes(a, db)
	resourceRoute.ResourceAdminRoutes(a, db)
	assignmentRoute.AssignmentAdminRoutes(a, db)
	scheduleRoute.ScheduleAdminRoutes(a, db)

	s := api.Group("/s", authMw.StudentAuthMiddleware())
	studentRoute.StudentSelfRoutes(s, db)
	assignmentRoute.AssignmentSelfRoutes(s, db)
	scheduleRoute.ScheduleSelfRoutes(s, db)
}
