// file: internals/features/schedules/controller/schedule_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	assignmentModel "kocluk_backend/internals/features/assignments/model"
	lessonModel "kocluk_backend/internals/features/lessons/model"
	"kocluk_backend/internals/features/schedules/dto"
	"kocluk_backend/internals/features/schedules/model"
	"kocluk_backend/internals/features/schedules/service"
	studentModel "kocluk_backend/internals/features/students/model"
	helper "kocluk_backend/internals/helpers"
	helperAuth "kocluk_backend/internals/helpers/auth"
)

// ScheduleController: weekly program generation and maintenance. Generation
// runs entirely in one transaction; a failed insert leaves nothing behind.
type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

const scheduleNotFound = "Program bulunamadı"

func (sc *ScheduleController) ownedStudent(c *fiber.Ctx, studentID uuid.UUID) (*studentModel.StudentModel, error) {
	var student studentModel.StudentModel
	if err := sc.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Öğrenci bulunamadı")
	}
	if !helperAuth.OwnerAllowed(c, student.StudentTeacherID) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Öğrenci bulunamadı")
	}
	return &student, nil
}

func (sc *ScheduleController) findOwned(c *fiber.Ctx, id uuid.UUID) (*model.WeeklyScheduleModel, error) {
	var schedule model.WeeklyScheduleModel
	if err := sc.DB.
		Preload("Weeks", func(db *gorm.DB) *gorm.DB {
			return db.Order("weekly_schedule_week_number ASC")
		}).
		Preload("Weeks.Topics", func(db *gorm.DB) *gorm.DB {
			return db.Order("weekly_schedule_topic_order ASC")
		}).
		First(&schedule, "weekly_schedule_id = ?", id).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, scheduleNotFound)
	}
	if _, err := sc.ownedStudent(c, schedule.WeeklyScheduleStudentID); err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, scheduleNotFound)
	}
	return &schedule, nil
}

// assignmentRefs joins assignments to their topic and lesson so the
// distributor can group by lesson and keep the curriculum order.
func (sc *ScheduleController) assignmentRefs(studentID uuid.UUID, ids []uuid.UUID) ([]service.AssignmentRef, error) {
	var assignments []assignmentModel.StudentAssignmentModel
	if err := sc.DB.
		Where("student_assignment_student_id = ? AND student_assignment_id IN ?", studentID, ids).
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	if len(assignments) != len(ids) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Ödev listesi öğrencinin ödevleriyle eşleşmiyor")
	}

	refs := make([]service.AssignmentRef, 0, len(assignments))
	for _, a := range assignments {
		var topic lessonModel.LessonTopicModel
		if err := sc.DB.First(&topic, "lesson_topic_id = ?", a.StudentAssignmentLessonTopicID).Error; err != nil {
			return nil, err
		}
		var lesson lessonModel.LessonModel
		if err := sc.DB.First(&lesson, "lesson_id = ?", topic.LessonTopicLessonID).Error; err != nil {
			return nil, err
		}
		refs = append(refs, service.AssignmentRef{
			AssignmentID: a.StudentAssignmentID,
			LessonID:     lesson.LessonID,
			LessonName:   lesson.LessonName,
			TopicOrder:   topic.LessonTopicOrder,
		})
	}
	return refs, nil
}

/* =======================================================
   POST /api/a/schedules - generate weeks + placements
======================================================= */

func (sc *ScheduleController) Create(c *fiber.Ctx) error {
	var req dto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	req.Normalize()
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	if !req.EndDate.After(req.StartDate) {
		return helper.JsonValidationError(c, []helper.FieldError{{
			Field: "endDate", Message: "Bitiş tarihi başlangıçtan sonra olmalıdır",
		}})
	}

	if _, err := sc.ownedStudent(c, req.StudentID); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	refs, err := sc.assignmentRefs(req.StudentID, req.AssignmentIDs)
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}

	weekCount := service.WeekCount(req.StartDate, req.EndDate)
	if weekCount == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tarih aralığı en az bir gün olmalıdır")
	}
	spans := service.BuildWeekSpans(req.StartDate, weekCount)
	placements := service.DistributeRoundRobin(refs, weekCount)

	schedule := model.WeeklyScheduleModel{
		WeeklyScheduleStudentID: req.StudentID,
		WeeklyScheduleTitle:     req.Title,
		WeeklyScheduleStartDate: req.StartDate,
		WeeklyScheduleEndDate:   req.EndDate,
		WeeklyScheduleIsActive:  true,
	}
	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&schedule).Error; err != nil {
			return err
		}
		weekIDs := make(map[int]uuid.UUID, len(spans))
		for _, span := range spans {
			week := model.WeeklyScheduleWeekModel{
				WeeklyScheduleWeekScheduleID: schedule.WeeklyScheduleID,
				WeeklyScheduleWeekNumber:     span.Number,
				WeeklyScheduleWeekStartDate:  span.StartDate,
				WeeklyScheduleWeekEndDate:    span.EndDate,
			}
			if err := tx.Create(&week).Error; err != nil {
				return err
			}
			weekIDs[span.Number] = week.WeeklyScheduleWeekID
		}
		for _, p := range placements {
			topic := model.WeeklyScheduleTopicModel{
				WeeklyScheduleTopicWeekID:       weekIDs[p.WeekNumber],
				WeeklyScheduleTopicAssignmentID: p.AssignmentID,
				WeeklyScheduleTopicOrder:        p.TopicOrder,
			}
			if err := tx.Create(&topic).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	fresh, err := sc.findOwned(c, schedule.WeeklyScheduleID)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonCreated(c, dto.FromScheduleModel(*fresh))
}

/* =======================================================
   GET /api/a/students/:id/schedules
======================================================= */

func (sc *ScheduleController) ListByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz kimlik")
	}
	if _, err := sc.ownedStudent(c, studentID); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var schedules []model.WeeklyScheduleModel
	if err := sc.DB.
		Where("weekly_schedule_student_id = ?", studentID).
		Order("weekly_schedule_start_date DESC").
		Find(&schedules).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, dto.FromScheduleModels(schedules))
}

/* =======================================================
   GET /api/a/schedules/:id - full tree
======================================================= */

func (sc *ScheduleController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz kimlik")
	}
	schedule, err := sc.findOwned(c, id)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, dto.FromScheduleModel(*schedule))
}

/* =======================================================
   GET /api/a/schedules/:id/weeks - week buckets only
======================================================= */

func (sc *ScheduleController) ListWeeks(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz kimlik")
	}
	schedule, err := sc.findOwned(c, id)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, dto.FromWeekModels(schedule.Weeks))
}

/* =======================================================
   PUT /api/a/schedules/:id - title / active flag
======================================================= */

func (sc *ScheduleController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz kimlik")
	}
	schedule, err := sc.findOwned(c, id)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var req dto.UpdateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["weekly_schedule_title"] = *req.Title
	}
	if req.IsActive != nil {
		updates["weekly_schedule_is_active"] = *req.IsActive
	}
	if len(updates) > 0 {
		if err := sc.DB.Model(schedule).Updates(updates).Error; err != nil {
			return helper.WritePGError(c, err)
		}
	}

	fresh, err := sc.findOwned(c, id)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonOK(c, dto.FromScheduleModel(*fresh))
}

/* =======================================================
   DELETE /api/a/schedules/:id - weeks and topics go with it
======================================================= */

func (sc *ScheduleController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz kimlik")
	}
	schedule, err := sc.findOwned(c, id)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		weekIDs := tx.Model(&model.WeeklyScheduleWeekModel{}).
			Select("weekly_schedule_week_id").
			Where("weekly_schedule_week_schedule_id = ?", id)
		if err := tx.Where("weekly_schedule_topic_week_id IN (?)", weekIDs).
			Delete(&model.WeeklyScheduleTopicModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("weekly_schedule_week_schedule_id = ?", id).
			Delete(&model.WeeklyScheduleWeekModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(schedule).Error
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonDeleted(c, "Program silindi")
}

/* =======================================================
   PUT /api/a/weeks/:id - edit placements of one week
======================================================= */

func (sc *ScheduleController) UpdateWeek(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz kimlik")
	}

	var week model.WeeklyScheduleWeekModel
	if err := sc.DB.First(&week, "weekly_schedule_week_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Hafta bulunamadı")
	}
	if _, err := sc.findOwned(c, week.WeeklyScheduleWeekScheduleID); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Hafta bulunamadı")
	}

	var req dto.UpdateWeekRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	now := time.Now()
	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		for _, edit := range req.Topics {
			var topic model.WeeklyScheduleTopicModel
			if err := tx.Where(
				"weekly_schedule_topic_week_id = ? AND weekly_schedule_topic_assignment_id = ?",
				id, edit.AssignmentID,
			).First(&topic).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Haftada bulunmayan bir ödev düzenlenmeye çalışıldı")
			}

			updates := map[string]any{}
			if edit.TopicOrder != nil {
				updates["weekly_schedule_topic_order"] = *edit.TopicOrder
			}
			if edit.IsCompleted != nil {
				updates["weekly_schedule_topic_is_completed"] = *edit.IsCompleted
				if *edit.IsCompleted {
					updates["weekly_schedule_topic_completed_at"] = now
				} else {
					updates["weekly_schedule_topic_completed_at"] = nil
				}
			}
			if len(updates) > 0 {
				if err := tx.Model(&topic).Updates(updates).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}

	if err := sc.DB.
		Preload("Topics", func(db *gorm.DB) *gorm.DB {
			return db.Order("weekly_schedule_topic_order ASC")
		}).
		First(&week, "weekly_schedule_week_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, dto.FromWeekModel(week))
}

/* =======================================================
   GET /api/s/schedules - student self view
======================================================= */

func (sc *ScheduleController) ListOwn(c *fiber.Ctx) error {
	studentID, err := helperAuth.GetStudentIDFromToken(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var schedules []model.WeeklyScheduleModel
	if err := sc.DB.
		Preload("Weeks", func(db *gorm.DB) *gorm.DB {
			return db.Order("weekly_schedule_week_number ASC")
		}).
		Preload("Weeks.Topics", func(db *gorm.DB) *gorm.DB {
			return db.Order("weekly_schedule_topic_order ASC")
		}).
		Where("weekly_schedule_student_id = ? AND weekly_schedule_is_active = ?", studentID, true).
		Order("weekly_schedule_start_date DESC").
		Find(&schedules).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, dto.FromScheduleModels(schedules))
}
