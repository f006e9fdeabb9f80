// file: internals/features/assignments/controller/assignment_controller_test.go
package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kocluk_backend/internals/constants"
	"kocluk_backend/internals/databases/migrations"
	"kocluk_backend/internals/features/assignments/dto"
	"kocluk_backend/internals/features/assignments/model"
	lessonModel "kocluk_backend/internals/features/lessons/model"
	studentModel "kocluk_backend/internals/features/students/model"
	userModel "kocluk_backend/internals/features/users/user/model"
	helperAuth "kocluk_backend/internals/helpers/auth"
)

type fixture struct {
	app       *fiber.App
	db        *gorm.DB
	teacherID uuid.UUID
	studentID uuid.UUID
	lessonID  uuid.UUID
	topicIDs  []uuid.UUID
}

func setupFixture(t *testing.T) *fixture {
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

	lesson := lessonModel.LessonModel{
		LessonTeacherID: teacher.UserID, LessonName: "Matematik",
		LessonGroup: "9. Sınıf", LessonExamType: constants.ExamTypeTYT, LessonColor: "blue",
	}
	require.NoError(t, db.Create(&lesson).Error)

	topicIDs := make([]uuid.UUID, 0, 3)
	for i, name := range []string{"Konu 1", "Konu 2", "Konu 3"} {
		topic := lessonModel.LessonTopicModel{
			LessonTopicLessonID: lesson.LessonID, LessonTopicName: name, LessonTopicOrder: i + 1,
		}
		require.NoError(t, db.Create(&topic).Error)
		topicIDs = append(topicIDs, topic.LessonTopicID)
	}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helperAuth.LocUserID, teacher.UserID.String())
		c.Locals(helperAuth.LocUserRole, constants.RoleTeacher)
		return c.Next()
	})

	assignCtrl := NewAssignmentController(db)
	progCtrl := NewProgressController(db)
	app.Post("/api/a/assignments", assignCtrl.Replace)
	app.Get("/api/a/students/:id/assignments", assignCtrl.ListByStudent)
	app.Post("/api/a/progress", progCtrl.Upsert)
	app.Post("/api/a/progress/increment", progCtrl.Increment)

	return &fixture{
		app: app, db: db,
		teacherID: teacher.UserID, studentID: student.StudentID,
		lessonID: lesson.LessonID, topicIDs: topicIDs,
	}
}

func (f *fixture) doJSON(t *testing.T, method, path string, body any) *http.Response {
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

func (f *fixture) assignedTopicSet(t *testing.T) map[uuid.UUID]bool {
	t.Helper()
	var rows []model.StudentAssignmentModel
	require.NoError(t, f.db.
		Where("student_assignment_student_id = ?", f.studentID).
		Find(&rows).Error)
	set := map[uuid.UUID]bool{}
	for _, r := range rows {
		set[r.StudentAssignmentLessonTopicID] = true
	}
	return set
}

func TestReplaceAssignments_BuildsExactSet(t *testing.T) {
	f := setupFixture(t)

	resp := f.doJSON(t, fiber.MethodPost, "/api/a/assignments", fiber.Map{
		"studentId": f.studentID,
		"topicIds":  []uuid.UUID{f.topicIDs[0], f.topicIDs[1]},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	out := decodeData[dto.ReplaceAssignmentsResponse](t, resp)
	assert.Equal(t, 2, out.Assignments)

	// a second replace swaps the set entirely
	resp = f.doJSON(t, fiber.MethodPost, "/api/a/assignments", fiber.Map{
		"studentId": f.studentID,
		"topicIds":  []uuid.UUID{f.topicIDs[2]},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	out = decodeData[dto.ReplaceAssignmentsResponse](t, resp)
	assert.Equal(t, 1, out.Assignments)

	set := f.assignedTopicSet(t)
	assert.Len(t, set, 1)
	assert.True(t, set[f.topicIDs[2]])
	assert.False(t, set[f.topicIDs[0]])
}

func TestReplaceAssignments_EmptyListWipes(t *testing.T) {
	f := setupFixture(t)

	f.doJSON(t, fiber.MethodPost, "/api/a/assignments", fiber.Map{
		"studentId": f.studentID,
		"topicIds":  []uuid.UUID{f.topicIDs[0], f.topicIDs[1]},
	})

	resp := f.doJSON(t, fiber.MethodPost, "/api/a/assignments", fiber.Map{
		"studentId": f.studentID,
		"topicIds":  []uuid.UUID{},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	out := decodeData[dto.ReplaceAssignmentsResponse](t, resp)
	assert.Equal(t, 0, out.Assignments)
	assert.Empty(t, f.assignedTopicSet(t))
}

func TestReplaceAssignments_BadTopicIsPerTopicFailure(t *testing.T) {
	f := setupFixture(t)
	bogus := uuid.New()

	resp := f.doJSON(t, fiber.MethodPost, "/api/a/assignments", fiber.Map{
		"studentId": f.studentID,
		"topicIds":  []uuid.UUID{f.topicIDs[0], bogus},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode, "a bad topic never aborts the batch")

	out := decodeData[dto.ReplaceAssignmentsResponse](t, resp)
	assert.Equal(t, 1, out.Assignments)
	require.Len(t, out.Results, 2)

	byTopic := map[uuid.UUID]dto.TopicResult{}
	for _, r := range out.Results {
		byTopic[r.TopicID] = r
	}
	assert.True(t, byTopic[f.topicIDs[0]].Success)
	assert.False(t, byTopic[bogus].Success)
	assert.NotEmpty(t, byTopic[bogus].Error)
}

func (f *fixture) assign(t *testing.T, topicID uuid.UUID) uuid.UUID {
	t.Helper()
	resp := f.doJSON(t, fiber.MethodPost, "/api/a/assignments", fiber.Map{
		"studentId": f.studentID,
		"topicIds":  []uuid.UUID{topicID},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = f.doJSON(t, fiber.MethodGet, fmt.Sprintf("/api/a/students/%s/assignments", f.studentID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decodeData[[]dto.AssignmentResponse](t, resp)
	require.Len(t, list, 1)
	return list[0].ID
}

func TestProgressUpsert_NoDuplicateOnSameKey(t *testing.T) {
	f := setupFixture(t)
	assignmentID := f.assign(t, f.topicIDs[0])
	resourceID := uuid.New() // progress key only; no FK enforcement on sqlite

	body := fiber.Map{
		"studentId":    f.studentID,
		"assignmentId": assignmentID,
		"resourceId":   resourceID,
		"topicId":      f.topicIDs[0],
		"solvedCount":  10,
		"correctCount": 7,
		"wrongCount":   2,
		"emptyCount":   1,
	}
	resp := f.doJSON(t, fiber.MethodPost, "/api/a/progress", body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body["solvedCount"] = 25
	body["correctCount"] = 20
	resp = f.doJSON(t, fiber.MethodPost, "/api/a/progress", body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decodeData[dto.ProgressResponse](t, resp)
	assert.Equal(t, 25, out.SolvedCount)
	assert.Equal(t, 20, out.CorrectCount)

	var count int64
	require.NoError(t, f.db.Model(&model.StudentProgressModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "upsert must not create a second row for the same key")
}

func TestProgressIncrement_SumsAtomically(t *testing.T) {
	f := setupFixture(t)
	assignmentID := f.assign(t, f.topicIDs[0])
	resourceID := uuid.New()

	body := fiber.Map{
		"studentId":    f.studentID,
		"assignmentId": assignmentID,
		"resourceId":   resourceID,
		"topicId":      f.topicIDs[0],
	}

	// first increment creates the row with the default delta of 1
	resp := f.doJSON(t, fiber.MethodPost, "/api/a/progress/increment", body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out := decodeData[dto.ProgressResponse](t, resp)
	assert.Equal(t, 1, out.SolvedCount)

	body["increment"] = 5
	resp = f.doJSON(t, fiber.MethodPost, "/api/a/progress/increment", body)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	out = decodeData[dto.ProgressResponse](t, resp)
	assert.Equal(t, 6, out.SolvedCount)
	assert.NotNil(t, out.LastSolvedAt)
}

func TestProgressWrite_ForeignStudentHidden(t *testing.T) {
	f := setupFixture(t)
	assignmentID := f.assign(t, f.topicIDs[0])

	outsider := userModel.UserModel{
		UserName: "Diğer Öğretmen", UserEmail: "diger@example.com", UserRole: constants.RoleTeacher,
	}
	require.NoError(t, f.db.Create(&outsider).Error)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helperAuth.LocUserID, outsider.UserID.String())
		c.Locals(helperAuth.LocUserRole, constants.RoleTeacher)
		return c.Next()
	})
	progCtrl := NewProgressController(f.db)
	app.Post("/api/a/progress", progCtrl.Upsert)
	app.Post("/api/a/progress/increment", progCtrl.Increment)

	body := fiber.Map{
		"studentId":    f.studentID,
		"assignmentId": assignmentID,
		"resourceId":   uuid.New(),
		"topicId":      f.topicIDs[0],
		"solvedCount":  3,
	}
	for _, path := range []string{"/api/a/progress", "/api/a/progress/increment"} {
		var buf bytes.Buffer
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
		req := httptest.NewRequest(fiber.MethodPost, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode, "foreign student must stay hidden")
	}

	var count int64
	require.NoError(t, f.db.Model(&model.StudentProgressModel{}).Count(&count).Error)
	assert.Zero(t, count, "no progress row for a foreign teacher's write")
}
