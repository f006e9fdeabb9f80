// file: internals/features/students/route/student_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kocluk_backend/internals/features/students/controller"
)

// StudentAdminRoutes: teacher-scoped student CRUD under /api/a.
func StudentAdminRoutes(a fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	grp := a.Group("/students")
	grp.Post("/", ctrl.Create)
	grp.Get("/", ctrl.List)
	grp.Get("/:id", ctrl.GetByID)
	grp.Put("/:id", ctrl.Update)
	grp.Delete("/:id", ctrl.Delete)
}

// StudentSelfRoutes: student-facing profile under /api/s.
func StudentSelfRoutes(s fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)
	s.Get("/me", ctrl.Me)
}
