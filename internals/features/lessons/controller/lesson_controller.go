// file: internals/features/lessons/controller/lesson_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kocluk_backend/internals/features/lessons/dto"
	"kocluk_backend/internals/features/lessons/model"
	"kocluk_backend/internals/features/lessons/service"
	helper "kocluk_backend/internals/helpers"
	helperAuth "kocluk_backend/internals/helpers/auth"
)

type LessonController struct {
	DB *gorm.DB
}

func NewLessonController(db *gorm.DB) *LessonController {
	return &LessonController{DB: db}
}

const lessonNotFound = "Ders bulunamadı"

func (lc *LessonController) findOwned(c *fiber.Ctx, id uuid.UUID) (*model.LessonModel, error) {
	var lesson model.LessonModel
	if err := lc.DB.First(&lesson, "lesson_id = ?", id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, lessonNotFound)
	}
	if !helperAuth.OwnerAllowed(c, lesson.LessonTeacherID) {
		return nil, fiber.NewError(fiber.StatusNotFound, lessonNotFound)
	}
	return &lesson, nil
}

/* =======================================================
   POST /api/a/lessons - color auto-assigned when omitted
======================================================= */

func (lc *LessonController) Create(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Oturum bulunamadı")
	}

	var req dto.CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	color := req.Color
	if color == "" {
		color, err = service.AutoAssignColor(lc.DB, teacherID)
		if err != nil {
			return helper.WritePGError(c, err)
		}
	}

	lesson := req.ToModel(teacherID, color)
	if err := lc.DB.Create(&lesson).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, dto.FromLessonModel(lesson))
}

/* =======================================================
   GET /api/a/lessons
======================================================= */

func (lc *LessonController) List(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Oturum bulunamadı")
	}
	p := helper.ParseFiber(c, helper.DefaultOpts)

	q := lc.DB.Model(&model.LessonModel{}).Where("lesson_teacher_id = ?", teacherID)
	if g := c.Query("group"); g != "" {
		q = q.Where("lesson_group = ?", g)
	}
	if t := c.Query("type"); t != "" {
		q = q.Where("lesson_exam_type = ?", t)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var lessons []model.LessonModel
	if err := q.Session(&gorm.Session{}).
		Order("lesson_name ASC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&lessons).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, dto.FromLessonModels(lessons), helper.BuildMeta(total, p))
}

/* =======================================================
   GET /api/a/lessons/:id
======================================================= */

func (lc *LessonController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz kimlik")
	}
	lesson, err := lc.findOwned(c, id)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, dto.FromLessonModel(*lesson))
}

/* =======================================================
   PUT /api/a/lessons/:id
======================================================= */

func (lc *LessonController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz kimlik")
	}
	lesson, err := lc.findOwned(c, id)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var req dto.UpdateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["lesson_name"] = *req.Name
	}
	if req.Group != nil {
		updates["lesson_group"] = *req.Group
	}
	if req.ExamType != nil {
		updates["lesson_exam_type"] = *req.ExamType
	}
	if req.Subject != nil {
		updates["lesson_subject"] = *req.Subject
	}
	if req.Color != nil {
		updates["lesson_color"] = *req.Color
	}

	if len(updates) > 0 {
		if err := lc.DB.Model(lesson).Updates(updates).Error; err != nil {
			return helper.WritePGError(c, err)
		}
	}

	if err := lc.DB.First(lesson, "lesson_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, dto.FromLessonModel(*lesson))
}

/* =======================================================
   DELETE /api/a/lessons/:id - topics cascade with the lesson
======================================================= */

func (lc *LessonController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz kimlik")
	}
	lesson, err := lc.findOwned(c, id)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	if err := lc.DB.Delete(lesson).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Ders silindi")
}
