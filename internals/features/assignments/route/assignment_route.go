// file: internals/features/assignments/route/assignment_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kocluk_backend/internals/features/assignments/controller"
)

// AssignmentAdminRoutes: assignment batch replacement and per-resource
// progress tracking under /api/a.
func AssignmentAdminRoutes(a fiber.Router, db *gorm.DB) {
	assignCtrl := controller.NewAssignmentController(db)
	progCtrl := controller.NewProgressController(db)

	assignments := a.Group("/assignments")
	assignments.Post("/", assignCtrl.Replace)
	assignments.Patch("/:id", assignCtrl.UpdateCompletion)

	a.Get("/students/:id/assignments", assignCtrl.ListByStudent)
	a.Get("/students/:id/progress", progCtrl.ListByStudent)

	progress := a.Group("/progress")
	progress.Post("/", progCtrl.Upsert)
	progress.Post("/increment", progCtrl.Increment)
	progress.Get("/:id", progCtrl.GetByID)
	progress.Put("/:id", progCtrl.Update)
	progress.Delete("/:id", progCtrl.Delete)
}

// AssignmentSelfRoutes: the student's own assignment list under /api/s.
func AssignmentSelfRoutes(s fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAssignmentController(db)
	s.Get("/assignments", ctrl.ListOwn)
}
