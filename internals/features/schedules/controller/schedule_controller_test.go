// file: internals/features/schedules/controller/schedule_controller_test.go
package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kocluk_backend/internals/constants"
	"kocluk_backend/internals/databases/migrations"
	assignmentModel "kocluk_backend/internals/features/assignments/model"
	lessonModel "kocluk_backend/internals/features/lessons/model"
	"kocluk_backend/internals/features/schedules/dto"
	studentModel "kocluk_backend/internals/features/students/model"
	userModel "kocluk_backend/internals/features/users/user/model"
	helperAuth "kocluk_backend/internals/helpers/auth"
)

type scheduleFixture struct {
	app           *fiber.App
	db            *gorm.DB
	studentID     uuid.UUID
	assignmentIDs []uuid.UUID
}

// two lessons with two topics each, all four assigned to the student
func setupScheduleFixture(t *testing.T) *scheduleFixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, migrations.Run(db))

	teacher := userModel.UserModel{
		UserName: "Öğretmen", UserEmail: "t@example.com", UserRole: constants.RoleTeacher,
	}
	require.NoError(t, db.Create(&teacher).Error)

	student := studentModel.StudentModel{
		StudentTeacherID: teacher.UserID, StudentName: "Öğrenci",
	}
	require.NoError(t, db.Create(&student).Error)

	now := time.Now()
	assignmentIDs := make([]uuid.UUID, 0, 4)
	for _, lessonName := range []string{"Matematik", "Türkçe"} {
		lesson := lessonModel.LessonModel{
			LessonTeacherID: teacher.UserID, LessonName: lessonName,
			LessonGroup: "9. Sınıf", LessonExamType: constants.ExamTypeTYT, LessonColor: "blue",
		}
		require.NoError(t, db.Create(&lesson).Error)

		for order := 1; order <= 2; order++ {
			topic := lessonModel.LessonTopicModel{
				LessonTopicLessonID: lesson.LessonID,
				LessonTopicName:     lessonName + " konusu",
				LessonTopicOrder:    order,
			}
			require.NoError(t, db.Create(&topic).Error)

			assignment := assignmentModel.StudentAssignmentModel{
				StudentAssignmentStudentID:     student.StudentID,
				StudentAssignmentLessonTopicID: topic.LessonTopicID,
				StudentAssignmentAssignedAt:    now,
			}
			require.NoError(t, db.Create(&assignment).Error)
			assignmentIDs = append(assignmentIDs, assignment.StudentAssignmentID)
		}
	}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helperAuth.LocUserID, teacher.UserID.String())
		c.Locals(helperAuth.LocUserRole, constants.RoleTeacher)
		return c.Next()
	})

	ctrl := NewScheduleController(db)
	app.Post("/api/a/schedules", ctrl.Create)
	app.Get("/api/a/schedules/:id", ctrl.GetByID)
	app.Get("/api/a/schedules/:id/weeks", ctrl.ListWeeks)
	app.Delete("/api/a/schedules/:id", ctrl.Delete)

	return &scheduleFixture{
		app: app, db: db,
		studentID: student.StudentID, assignmentIDs: assignmentIDs,
	}
}

func (f *scheduleFixture) doJSON(t *testing.T, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeData[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope.Data
}

func TestScheduleCreate_TwoWeeksRoundRobin(t *testing.T) {
	f := setupScheduleFixture(t)

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 14)

	resp := f.doJSON(t, fiber.MethodPost, "/api/a/schedules", fiber.Map{
		"studentId":     f.studentID,
		"title":         "Mart Programı",
		"startDate":     start,
		"endDate":       end,
		"assignmentIds": f.assignmentIDs,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	schedule := decodeData[dto.ScheduleResponse](t, resp)
	require.Len(t, schedule.Weeks, 2, "14 days is exactly 2 weeks")
	assert.True(t, schedule.IsActive)

	for i, week := range schedule.Weeks {
		assert.Equal(t, i+1, week.WeekNumber)
		require.Len(t, week.Topics, 2, "one topic per lesson per week")
		orders := []int{week.Topics[0].TopicOrder, week.Topics[1].TopicOrder}
		assert.ElementsMatch(t, []int{1, 2}, orders)
	}

	// week spans are contiguous 7-day buckets
	w1, w2 := schedule.Weeks[0], schedule.Weeks[1]
	assert.True(t, w1.StartDate.Equal(start))
	assert.True(t, w2.StartDate.Equal(w1.EndDate.AddDate(0, 0, 1)))

	// every assignment placed exactly once
	placed := map[uuid.UUID]int{}
	for _, week := range schedule.Weeks {
		for _, topic := range week.Topics {
			placed[topic.AssignmentID]++
		}
	}
	require.Len(t, placed, 4)
	for _, n := range placed {
		assert.Equal(t, 1, n)
	}
}

func TestScheduleCreate_RejectsForeignAssignments(t *testing.T) {
	f := setupScheduleFixture(t)

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	resp := f.doJSON(t, fiber.MethodPost, "/api/a/schedules", fiber.Map{
		"studentId":     f.studentID,
		"title":         "Bozuk Program",
		"startDate":     start,
		"endDate":       start.AddDate(0, 0, 7),
		"assignmentIds": []uuid.UUID{uuid.New()},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestScheduleCreate_RejectsInvertedDates(t *testing.T) {
	f := setupScheduleFixture(t)

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	resp := f.doJSON(t, fiber.MethodPost, "/api/a/schedules", fiber.Map{
		"studentId":     f.studentID,
		"title":         "Ters Tarih",
		"startDate":     start,
		"endDate":       start.AddDate(0, 0, -7),
		"assignmentIds": f.assignmentIDs,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestScheduleWeeks_ListsOrderedBuckets(t *testing.T) {
	f := setupScheduleFixture(t)

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	resp := f.doJSON(t, fiber.MethodPost, "/api/a/schedules", fiber.Map{
		"studentId":     f.studentID,
		"title":         "Mart Programı",
		"startDate":     start,
		"endDate":       start.AddDate(0, 0, 14),
		"assignmentIds": f.assignmentIDs,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	schedule := decodeData[dto.ScheduleResponse](t, resp)

	resp = f.doJSON(t, fiber.MethodGet, "/api/a/schedules/"+schedule.ID.String()+"/weeks", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	weeks := decodeData[[]dto.WeekResponse](t, resp)
	require.Len(t, weeks, 2)
	for i, week := range weeks {
		assert.Equal(t, i+1, week.WeekNumber)
		assert.Equal(t, schedule.ID, week.ScheduleID)
		assert.Len(t, week.Topics, 2)
	}
}

func TestScheduleDelete_RemovesTree(t *testing.T) {
	f := setupScheduleFixture(t)

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	resp := f.doJSON(t, fiber.MethodPost, "/api/a/schedules", fiber.Map{
		"studentId":     f.studentID,
		"title":         "Silinecek",
		"startDate":     start,
		"endDate":       start.AddDate(0, 0, 14),
		"assignmentIds": f.assignmentIDs,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	schedule := decodeData[dto.ScheduleResponse](t, resp)

	resp = f.doJSON(t, fiber.MethodDelete, "/api/a/schedules/"+schedule.ID.String(), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var weeks, topics int64
	require.NoError(t, f.db.Table("weekly_schedule_weeks").Count(&weeks).Error)
	require.NoError(t, f.db.Table("weekly_schedule_topics").Count(&topics).Error)
	assert.Zero(t, weeks)
	assert.Zero(t, topics)
}
