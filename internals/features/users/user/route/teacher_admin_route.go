// file: internals/features/users/user/route/teacher_admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kocluk_backend/internals/features/users/user/controller"
	authMw "kocluk_backend/internals/middlewares/auth"
)

// TeacherAdminRoutes mounts teacher-account management under the
// authenticated admin group; every route is super-admin only.
func TeacherAdminRoutes(a fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTeacherAdminController(db)

	grp := a.Group("/teachers", authMw.OnlySuperAdmin())
	grp.Post("/", ctrl.Create)
	grp.Get("/", ctrl.List)
	grp.Get("/:id", ctrl.GetByID)
	grp.Put("/:id", ctrl.Update)
	grp.Delete("/:id", ctrl.Delete)
}
