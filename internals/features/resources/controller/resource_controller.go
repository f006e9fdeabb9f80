// file: internals/features/resources/controller/resource_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kocluk_backend/internals/features/resources/dto"
	"kocluk_backend/internals/features/resources/model"
	helper "kocluk_backend/internals/helpers"
	helperAuth "kocluk_backend/internals/helpers/auth"
)

type ResourceController struct {
	DB *gorm.DB
}

func NewResourceController(db *gorm.DB) *ResourceController {
	return &ResourceController{DB: db}
}

const resourceNotFound = "Kaynak bulunamadı"

func (rc *ResourceController) findOwned(c *fiber.Ctx, id uuid.UUID) (*model.ResourceModel, error) {
	var resource model.ResourceModel
	if err := rc.DB.
		Preload("Lessons").Preload("Topics").
		First(&resource, "resource_id = ?", id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, resourceNotFound)
	}
	if !helperAuth.OwnerAllowed(c, resource.ResourceTeacherID) {
		return nil, fiber.NewError(fiber.StatusNotFound, resourceNotFound)
	}
	return &resource, nil
}

func buildLessonLinks(resourceID uuid.UUID, lessonIDs []uuid.UUID) []model.ResourceLessonModel {
	links := make([]model.ResourceLessonModel, 0, len(lessonIDs))
	for _, lid := range lessonIDs {
		links = append(links, model.ResourceLessonModel{
			ResourceLessonResourceID: resourceID,
			ResourceLessonLessonID:   lid,
		})
	}
	return links
}

func buildTopicLinks(resourceID uuid.UUID, topics []dto.ResourceTopicInput) []model.ResourceTopicModel {
	links := make([]model.ResourceTopicModel, 0, len(topics))
	for _, t := range topics {
		links = append(links, model.ResourceTopicModel{
			ResourceTopicResourceID:    resourceID,
			ResourceTopicTopicID:       t.TopicID,
			ResourceTopicQuestionCount: t.QuestionCount,
		})
	}
	return links
}

/* =======================================================
   POST /api/a/resources - resource plus pivot rows in one tx
======================================================= */

func (rc *ResourceController) Create(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Oturum bulunamadı")
	}

	var req dto.CreateResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	resource := req.ToModel(teacherID)
	err = rc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&resource).Error; err != nil {
			return err
		}
		if links := buildLessonLinks(resource.ResourceID, req.LessonIDs); len(links) > 0 {
			if err := tx.Create(&links).Error; err != nil {
				return err
			}
		}
		if links := buildTopicLinks(resource.ResourceID, req.Topics); len(links) > 0 {
			if err := tx.Create(&links).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	if err := rc.DB.Preload("Lessons").Preload("Topics").
		First(&resource, "resource_id = ?", resource.ResourceID).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, dto.FromResourceModel(resource))
}

/* =======================================================
   GET /api/a/resources
======================================================= */

func (rc *ResourceController) List(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Oturum bulunamadı")
	}
	p := helper.ParseFiber(c, helper.DefaultOpts)

	var total int64
	if err := rc.DB.Model(&model.ResourceModel{}).
		Where("resource_teacher_id = ?", teacherID).
		Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var resources []model.ResourceModel
	if err := rc.DB.
		Preload("Lessons").Preload("Topics").
		Where("resource_teacher_id = ?", teacherID).
		Order("resource_name ASC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&resources).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, dto.FromResourceModels(resources), helper.BuildMeta(total, p))
}

/* =======================================================
   GET /api/a/resources/:id
======================================================= */

func (rc *ResourceController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz kimlik")
	}
	resource, err := rc.findOwned(c, id)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, dto.FromResourceModel(*resource))
}

/* =======================================================
   PUT /api/a/resources/:id - nested sets replaced when present
======================================================= */

func (rc *ResourceController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz kimlik")
	}
	resource, err := rc.findOwned(c, id)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var req dto.UpdateResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	err = rc.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{}
		if req.Name != nil {
			updates["resource_name"] = *req.Name
		}
		if req.Description != nil {
			updates["resource_description"] = *req.Description
		}
		if len(updates) > 0 {
			if err := tx.Model(resource).Updates(updates).Error; err != nil {
				return err
			}
		}

		if req.LessonIDs != nil {
			if err := tx.Where("resource_lesson_resource_id = ?", id).
				Delete(&model.ResourceLessonModel{}).Error; err != nil {
				return err
			}
			if links := buildLessonLinks(id, *req.LessonIDs); len(links) > 0 {
				if err := tx.Create(&links).Error; err != nil {
					return err
				}
			}
		}
		if req.Topics != nil {
			if err := tx.Where("resource_topic_resource_id = ?", id).
				Delete(&model.ResourceTopicModel{}).Error; err != nil {
				return err
			}
			if links := buildTopicLinks(id, *req.Topics); len(links) > 0 {
				if err := tx.Create(&links).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	var fresh model.ResourceModel
	if err := rc.DB.Preload("Lessons").Preload("Topics").
		First(&fresh, "resource_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, dto.FromResourceModel(fresh))
}

/* =======================================================
   DELETE /api/a/resources/:id - pivots removed in the same tx
======================================================= */

func (rc *ResourceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz kimlik")
	}
	resource, err := rc.findOwned(c, id)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	err = rc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("resource_lesson_resource_id = ?", id).
			Delete(&model.ResourceLessonModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("resource_topic_resource_id = ?", id).
			Delete(&model.ResourceTopicModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(resource).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Kaynak silindi")
}
