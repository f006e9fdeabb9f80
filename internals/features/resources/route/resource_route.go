// file: internals/features/resources/route/resource_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kocluk_backend/internals/features/resources/controller"
)

// ResourceAdminRoutes: study material management under /api/a.
func ResourceAdminRoutes(a fiber.Router, db *gorm.DB) {
	ctrl := controller.NewResourceController(db)

	grp := a.Group("/resources")
	grp.Post("/", ctrl.Create)
	grp.Get("/", ctrl.List)
	grp.Get("/:id", ctrl.GetByID)
	grp.Put("/:id", ctrl.Update)
	grp.Delete("/:id", ctrl.Delete)
}
