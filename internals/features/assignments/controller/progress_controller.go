// file: internals/features/assignments/controller/progress_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kocluk_backend/internals/features/assignments/dto"
	"kocluk_backend/internals/features/assignments/model"
	helper "kocluk_backend/internals/helpers"
)

// ProgressController: per-resource solve counters keyed by the unique
// (student, assignment, resource) triple. POST is an upsert on that key.
type ProgressController struct {
	DB *gorm.DB
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{DB: db}
}

const progressNotFound = "İlerleme kaydı bulunamadı"

func (pc *ProgressController) guardStudent(c *fiber.Ctx, studentID uuid.UUID) error {
	ac := &AssignmentController{DB: pc.DB}
	if _, err := ac.ownedStudent(c, studentID); err != nil {
		return err
	}
	return nil
}

/* =======================================================
   POST /api/a/progress - upsert on the triple key
======================================================= */

func (pc *ProgressController) Upsert(c *fiber.Ctx) error {
	var req dto.UpsertProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	if err := pc.guardStudent(c, req.StudentID); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	now := time.Now()
	rec := req.ToModel(now)
	if err := pc.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "student_progress_student_id"},
			{Name: "student_progress_assignment_id"},
			{Name: "student_progress_resource_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"student_progress_solved_count",
			"student_progress_correct_count",
			"student_progress_wrong_count",
			"student_progress_empty_count",
			"student_progress_total_count",
			"student_progress_last_solved_at",
			"student_progress_updated_at",
		}),
	}).Create(&rec).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var fresh model.StudentProgressModel
	if err := pc.DB.Where(
		"student_progress_student_id = ? AND student_progress_assignment_id = ? AND student_progress_resource_id = ?",
		req.StudentID, req.AssignmentID, req.ResourceID,
	).First(&fresh).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, dto.FromProgressModel(fresh))
}

/* =======================================================
   POST /api/a/progress/increment - atomic solvedCount += n
======================================================= */

func (pc *ProgressController) Increment(c *fiber.Ctx) error {
	var req dto.IncrementProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	if err := pc.guardStudent(c, req.StudentID); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	now := time.Now()
	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		// make sure the row exists; a fresh one starts at zero
		seed := model.StudentProgressModel{
			StudentProgressStudentID:     req.StudentID,
			StudentProgressAssignmentID:  req.AssignmentID,
			StudentProgressResourceID:    req.ResourceID,
			StudentProgressLessonTopicID: req.TopicID,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "student_progress_student_id"},
				{Name: "student_progress_assignment_id"},
				{Name: "student_progress_resource_id"},
			},
			DoNothing: true,
		}).Create(&seed).Error; err != nil {
			return err
		}

		return tx.Model(&model.StudentProgressModel{}).
			Where("student_progress_student_id = ? AND student_progress_assignment_id = ? AND student_progress_resource_id = ?",
				req.StudentID, req.AssignmentID, req.ResourceID).
			Updates(map[string]any{
				"student_progress_solved_count":   gorm.Expr("student_progress_solved_count + ?", req.Delta()),
				"student_progress_last_solved_at": now,
			}).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	var fresh model.StudentProgressModel
	if err := pc.DB.Where(
		"student_progress_student_id = ? AND student_progress_assignment_id = ? AND student_progress_resource_id = ?",
		req.StudentID, req.AssignmentID, req.ResourceID,
	).First(&fresh).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, dto.FromProgressModel(fresh))
}

/* =======================================================
   GET /api/a/students/:id/progress
======================================================= */

func (pc *ProgressController) ListByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz kimlik")
	}
	if err := pc.guardStudent(c, studentID); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var records []model.StudentProgressModel
	if err := pc.DB.
		Where("student_progress_student_id = ?", studentID).
		Order("student_progress_updated_at DESC").
		Find(&records).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, dto.FromProgressModels(records))
}

/* =======================================================
   GET /api/a/progress/:id
======================================================= */

func (pc *ProgressController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz kimlik")
	}

	var rec model.StudentProgressModel
	if err := pc.DB.First(&rec, "student_progress_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, progressNotFound)
	}
	if err := pc.guardStudent(c, rec.StudentProgressStudentID); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, progressNotFound)
	}
	return helper.JsonOK(c, dto.FromProgressModel(rec))
}

/* =======================================================
   PUT /api/a/progress/:id
======================================================= */

func (pc *ProgressController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz kimlik")
	}

	var rec model.StudentProgressModel
	if err := pc.DB.First(&rec, "student_progress_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, progressNotFound)
	}
	if err := pc.guardStudent(c, rec.StudentProgressStudentID); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, progressNotFound)
	}

	var req dto.UpdateProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	updates := map[string]any{}
	if req.SolvedCount != nil {
		updates["student_progress_solved_count"] = *req.SolvedCount
	}
	if req.CorrectCount != nil {
		updates["student_progress_correct_count"] = *req.CorrectCount
	}
	if req.WrongCount != nil {
		updates["student_progress_wrong_count"] = *req.WrongCount
	}
	if req.EmptyCount != nil {
		updates["student_progress_empty_count"] = *req.EmptyCount
	}
	if req.TotalCount != nil {
		updates["student_progress_total_count"] = *req.TotalCount
	}

	if len(updates) > 0 {
		updates["student_progress_last_solved_at"] = time.Now()
		if err := pc.DB.Model(&rec).Updates(updates).Error; err != nil {
			return helper.WritePGError(c, err)
		}
	}

	if err := pc.DB.First(&rec, "student_progress_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, dto.FromProgressModel(rec))
}

/* =======================================================
   DELETE /api/a/progress/:id
======================================================= */

func (pc *ProgressController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz kimlik")
	}

	var rec model.StudentProgressModel
	if err := pc.DB.First(&rec, "student_progress_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, progressNotFound)
	}
	if err := pc.guardStudent(c, rec.StudentProgressStudentID); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, progressNotFound)
	}

	if err := pc.DB.Delete(&rec).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "İlerleme kaydı silindi")
}
