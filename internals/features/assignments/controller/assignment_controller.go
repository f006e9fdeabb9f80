// file: internals/features/assignments/controller/assignment_controller.go
package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"kocluk_backend/internals/features/assignments/dto"
	"kocluk_backend/internals/features/assignments/model"
	lessonModel "kocluk_backend/internals/features/lessons/model"
	resourceModel "kocluk_backend/internals/features/resources/model"
	studentModel "kocluk_backend/internals/features/students/model"
	helper "kocluk_backend/internals/helpers"
	helperAuth "kocluk_backend/internals/helpers/auth"
)

type AssignmentController struct {
	DB *gorm.DB
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{DB: db}
}

const assignmentNotFound = "Ödev bulunamadı"

func (ac *AssignmentController) ownedStudent(c *fiber.Ctx, studentID uuid.UUID) (*studentModel.StudentModel, error) {
	var student studentModel.StudentModel
	if err := ac.DB.First(&student, "student_id = ?", studentID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Öğrenci bulunamadı")
	}
	if !helperAuth.OwnerAllowed(c, student.StudentTeacherID) {
		return nil, fiber.NewError(fiber.StatusNotFound, "Öğrenci bulunamadı")
	}
	return &student, nil
}

// questionCountsFor collects resource→topic→count for one topic from the
// resource_topics pivots, so the assignment carries a snapshot of the
// material available at assignment time.
func questionCountsFor(db *gorm.DB, topicID uuid.UUID) (model.QuestionCountMap, error) {
	var links []resourceModel.ResourceTopicModel
	if err := db.Where("resource_topic_topic_id = ?", topicID).Find(&links).Error; err != nil {
		return nil, err
	}
	qc := model.QuestionCountMap{}
	for _, l := range links {
		rid := l.ResourceTopicResourceID.String()
		if qc[rid] == nil {
			qc[rid] = map[string]int{}
		}
		qc[rid][topicID.String()] = l.ResourceTopicQuestionCount
	}
	return qc, nil
}

/* =======================================================
   POST /api/a/assignments - destructive replace: every
   existing assignment of the student is dropped, then the
   set is rebuilt from topicIds with per-topic outcomes.
   An empty list wipes the set.
======================================================= */

func (ac *AssignmentController) Replace(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Oturum bulunamadı")
	}

	var req dto.ReplaceAssignmentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	if _, err := ac.ownedStudent(c, req.StudentID); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	// pre-validate outside the transaction so a bad topic id becomes a
	// per-topic failure instead of aborting the whole batch
	type validated struct {
		topicID uuid.UUID
		counts  model.QuestionCountMap
	}
	results := make([]dto.TopicResult, 0, len(req.TopicIDs))
	valid := make([]validated, 0, len(req.TopicIDs))
	seen := map[uuid.UUID]bool{}

	for _, topicID := range req.TopicIDs {
		if seen[topicID] {
			results = append(results, dto.TopicResult{
				TopicID: topicID, Success: false, Error: "Konu listede birden fazla kez geçiyor",
			})
			continue
		}
		seen[topicID] = true

		var topic lessonModel.LessonTopicModel
		if err := ac.DB.First(&topic, "lesson_topic_id = ?", topicID).Error; err != nil {
			results = append(results, dto.TopicResult{
				TopicID: topicID, Success: false, Error: "Konu bulunamadı",
			})
			continue
		}
		var lesson lessonModel.LessonModel
		if err := ac.DB.First(&lesson, "lesson_id = ?", topic.LessonTopicLessonID).Error; err != nil ||
			(!helperAuth.IsSuperAdmin(c) && lesson.LessonTeacherID != teacherID) {
			results = append(results, dto.TopicResult{
				TopicID: topicID, Success: false, Error: "Konu bulunamadı",
			})
			continue
		}

		counts, err := questionCountsFor(ac.DB, topicID)
		if err != nil {
			return helper.WritePGError(c, err)
		}
		valid = append(valid, validated{topicID: topicID, counts: counts})
	}

	now := time.Now()
	created := 0
	err = ac.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_assignment_student_id = ?", req.StudentID).
			Delete(&model.StudentAssignmentModel{}).Error; err != nil {
			return err
		}
		for _, v := range valid {
			a := model.StudentAssignmentModel{
				StudentAssignmentStudentID:      req.StudentID,
				StudentAssignmentLessonTopicID:  v.topicID,
				StudentAssignmentAssignedAt:     now,
				StudentAssignmentQuestionCounts: datatypes.NewJSONType(v.counts),
			}
			if err := tx.Create(&a).Error; err != nil {
				return err
			}
			created++
			results = append(results, dto.TopicResult{TopicID: v.topicID, Success: true})
		}
		return nil
	})
	if err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, dto.ReplaceAssignmentsResponse{
		Assignments:      created,
		TotalAssignments: created,
		Results:          results,
	})
}

/* =======================================================
   GET /api/a/students/:id/assignments
======================================================= */

func (ac *AssignmentController) ListByStudent(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz kimlik")
	}
	if _, err := ac.ownedStudent(c, studentID); err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var assignments []model.StudentAssignmentModel
	if err := ac.DB.
		Where("student_assignment_student_id = ?", studentID).
		Order("student_assignment_assigned_at ASC").
		Find(&assignments).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, dto.FromAssignmentModels(assignments))
}

/* =======================================================
   PATCH /api/a/assignments/:id - completion toggle
======================================================= */

func (ac *AssignmentController) UpdateCompletion(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz kimlik")
	}

	var req dto.UpdateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Geçersiz istek gövdesi")
	}
	if errs := helper.ValidateStruct(req); errs != nil {
		return helper.JsonValidationError(c, errs)
	}

	var assignment model.StudentAssignmentModel
	if err := ac.DB.First(&assignment, "student_assignment_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, assignmentNotFound)
	}
	if _, err := ac.ownedStudent(c, assignment.StudentAssignmentStudentID); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, assignmentNotFound)
	}

	updates := map[string]any{"student_assignment_completed": *req.Completed}
	if *req.Completed {
		now := time.Now()
		updates["student_assignment_completed_at"] = now
	} else {
		updates["student_assignment_completed_at"] = nil
	}
	if err := ac.DB.Model(&assignment).Updates(updates).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	if err := ac.DB.First(&assignment, "student_assignment_id = ?", id).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, dto.FromAssignmentModel(assignment))
}

/* =======================================================
   GET /api/s/assignments - student self view
======================================================= */

func (ac *AssignmentController) ListOwn(c *fiber.Ctx) error {
	studentID, err := helperAuth.GetStudentIDFromToken(c)
	if err != nil {
		fe := err.(*fiber.Error)
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	var assignments []model.StudentAssignmentModel
	if err := ac.DB.
		Where("student_assignment_student_id = ?", studentID).
		Order("student_assignment_assigned_at ASC").
		Find(&assignments).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, dto.FromAssignmentModels(assignments))
}
