// file: internals/features/schedules/route/schedule_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kocluk_backend/internals/features/schedules/controller"
)

// ScheduleAdminRoutes: weekly program generation and maintenance under /api/a.
func ScheduleAdminRoutes(a fiber.Router, db *gorm.DB) {
	ctrl := controller.NewScheduleController(db)

	grp := a.Group("/schedules")
	grp.Post("/", ctrl.Create)
	grp.Get("/:id", ctrl.GetByID)
	grp.Get("/:id/weeks", ctrl.ListWeeks)
	grp.Put("/:id", ctrl.Update)
	grp.Delete("/:id", ctrl.Delete)

	a.Get("/students/:id/schedules", ctrl.ListByStudent)
	a.Put("/weeks/:id", ctrl.UpdateWeek)
}

// ScheduleSelfRoutes: the student's own active programs under /api/s.
func ScheduleSelfRoutes(s fiber.Router, db *gorm.DB) {
	ctrl := controller.NewScheduleController(db)
	s.Get("/schedules", ctrl.ListOwn)
}
