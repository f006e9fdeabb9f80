// file: internals/features/lessons/route/lesson_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kocluk_backend/internals/features/lessons/controller"
)

// LessonAdminRoutes: lesson and topic management under /api/a.
// Reorder is registered before /:id so the static segment wins.
func LessonAdminRoutes(a fiber.Router, db *gorm.DB) {
	lessonCtrl := controller.NewLessonController(db)
	topicCtrl := controller.NewLessonTopicController(db)

	lessons := a.Group("/lessons")
	lessons.Post("/", lessonCtrl.Create)
	lessons.Get("/", lessonCtrl.List)
	lessons.Get("/:id", lessonCtrl.GetByID)
	lessons.Put("/:id", lessonCtrl.Update)
	lessons.Delete("/:id", lessonCtrl.Delete)
	lessons.Get("/:id/topics", topicCtrl.ListByLesson)

	topics := a.Group("/topics")
	topics.Post("/", topicCtrl.Create)
	topics.Put("/reorder", topicCtrl.Reorder)
	topics.Put("/:id", topicCtrl.Update)
	topics.Delete("/:id", topicCtrl.Delete)
}
