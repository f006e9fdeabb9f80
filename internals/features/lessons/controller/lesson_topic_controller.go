// file: internals/features/lessons/controller/lesson_topic_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kocluk_backend/internals/features/lessons/dto"
	"kocluk_backend/internals/features/lessons/model"
	helper "kocluk_backend/internals/helpers"
	helperAuth "kocluk_backend/internals/helpers/auth"
)

type LessonTopicController struct {
	DB *gorm.DB
}

func NewLessonTopicController(db *gorm.DB) *LessonTopicController {
	return &LessonTopicController{DB: db}
}

const topicNotFound = "Konu bulunamadı"

// ownedLesson gates every topic operation through the parent lesson.
func (tc *LessonTopicController) ownedLesson(c *fiber.Ctx, lessonID uuid.UUID) (*model.LessonModel, error) {
	var lesson model.LessonModel
	if err := tc.DB.First(&lesson, "lesson_id = ?", lessonID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, lessonNotFound)
	}
	if !helperAuth.OwnerAllowed(c, lesson.LessonTeacherID) {
		return nil, fiber.NewError(fiber.StatusNotFound, lessonNotFound)
	}
	return &lesson, nil
}

func (tc *LessonTopicController) findOwnedTopic(c *fiber.Ctx, id uuid.UUID) (*model.LessonTopicModel, error) {
	var topic model.LessonTopicModel
	if err := tc.DB.First(&topic, "lesson_topic_id = ?", id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, topicNotFound)
	}
	if _, err := tc.ownedLesson(c, topic.LessonTopicLessonID); err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, topicNotFound)
	}
	return &topic, nil
}

/* =======================================================
   POST /api/a/topics - order 0 appends to the end
======================================================= */

func (tc *LessonTopicController) Create(c *fiber.Ctx) error {
	var req dto.CreateTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	if _, err := tc.ownedLesson(c, req.LessonID); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var topic model.LessonTopicModel
	err := tc.DB.Transaction(func(tx *gorm.DB) error {
		order := req.Order
		if order <= 0 {
			var maxOrder int
			if err := tx.Model(&model.LessonTopicModel{}).
				Where("lesson_topic_lesson_id = ?", req.LessonID).
				Select("COALESCE(MAX(lesson_topic_order), 0)").
				Scan(&maxOrder).Error; err != nil {
				return err
			}
			order = maxOrder + 1
		} else {
			// make room: shift everything at or after the requested slot
			if err := tx.Model(&model.LessonTopicModel{}).
				Where("lesson_topic_lesson_id = ? AND lesson_topic_order >= ?", req.LessonID, order).
				UpdateColumn("lesson_topic_order", gorm.Expr("lesson_topic_order + 1")).Error; err != nil {
				return err
			}
		}
		topic = req.ToModel(order)
		return tx.Create(&topic).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, dto.FromTopicModel(topic))
}

/* =======================================================
   GET /api/a/lessons/:id/topics - ordered
======================================================= */

func (tc *LessonTopicController) ListByLesson(c *fiber.Ctx) error {
	lessonID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz kimlik")
	}
	if _, err := tc.ownedLesson(c, lessonID); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var topics []model.LessonTopicModel
	if err := tc.DB.
		Where("lesson_topic_lesson_id = ?", lessonID).
		Order("lesson_topic_order ASC").
		Find(&topics).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, dto.FromTopicModels(topics))
}

/* =======================================================
   PUT /api/a/topics/:id
======================================================= */

func (tc *LessonTopicController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz kimlik")
	}
	topic, err := tc.findOwnedTopic(c, id)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var req dto.UpdateTopicRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	if req.Name != nil {
		if err := tc.DB.Model(topic).
			UpdateColumn("lesson_topic_name", *req.Name).Error; err != nil {
			return helper.WritePGError(c, err)
		}
	}

	if err := tc.DB.First(topic, "lesson_topic_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, dto.FromTopicModel(*topic))
}

/* =======================================================
   PUT /api/a/topics/reorder - the id list becomes the new
   dense 1..N order, all rewritten in one transaction
======================================================= */

func (tc *LessonTopicController) Reorder(c *fiber.Ctx) error {
	var req dto.ReorderTopicsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	if _, err := tc.ownedLesson(c, req.LessonID); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	// the list must cover exactly the lesson's topic set
	var count int64
	if err := tc.DB.Model(&model.LessonTopicModel{}).
		Where("lesson_topic_lesson_id = ? AND lesson_topic_id IN ?", req.LessonID, req.TopicIDs).
		Count(&count).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	var total int64
	if err := tc.DB.Model(&model.LessonTopicModel{}).
		Where("lesson_topic_lesson_id = ?", req.LessonID).
		Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if count != int64(len(req.TopicIDs)) || total != int64(len(req.TopicIDs)) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Konu listesi dersin konularıyla birebir eşleşmiyor")
	}

	err := tc.DB.Transaction(func(tx *gorm.DB) error {
		for i, topicID := range req.TopicIDs {
			if err := tx.Model(&model.LessonTopicModel{}).
				Where("lesson_topic_id = ?", topicID).
				UpdateColumn("lesson_topic_order", i+1).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	var topics []model.LessonTopicModel
	if err := tc.DB.
		Where("lesson_topic_lesson_id = ?", req.LessonID).
		Order("lesson_topic_order ASC").
		Find(&topics).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, dto.FromTopicModels(topics))
}

/* =======================================================
   DELETE /api/a/topics/:id - remaining orders compacted
======================================================= */

func (tc *LessonTopicController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz kimlik")
	}
	topic, err := tc.findOwnedTopic(c, id)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	err = tc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(topic).Error; err != nil {
			return err
		}
		// keep the sequence dense after removal
		return tx.Model(&model.LessonTopicModel{}).
			Where("lesson_topic_lesson_id = ? AND lesson_topic_order > ?",
				topic.LessonTopicLessonID, topic.LessonTopicOrder).
			UpdateColumn("lesson_topic_order", gorm.Expr("lesson_topic_order - 1")).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Konu silindi")
}
