// file: internals/features/lessons/controller/lesson_topic_controller_test.go
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
	"kocluk_backend/internals/features/lessons/dto"
	userModel "kocluk_backend/internals/features/users/user/model"
	helperAuth "kocluk_backend/internals/helpers/auth"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB, uuid.UUID) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, migrations.Run(db))

	teacher := userModel.UserModel{
		UserName:  "Test Öğretmen",
		UserEmail: "teacher@example.com",
		UserRole:  constants.RoleTeacher,
	}
	require.NoError(t, db.Create(&teacher).Error)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helperAuth.LocUserID, teacher.UserID.String())
		c.Locals(helperAuth.LocUserRole, constants.RoleTeacher)
		return c.Next()
	})

	lessonCtrl := NewLessonController(db)
	topicCtrl := NewLessonTopicController(db)
	app.Post("/api/a/lessons", lessonCtrl.Create)
	app.Get("/api/a/lessons/:id/topics", topicCtrl.ListByLesson)
	app.Post("/api/a/topics", topicCtrl.Create)
	app.Put("/api/a/topics/reorder", topicCtrl.Reorder)
	app.Delete("/api/a/topics/:id", topicCtrl.Delete)

	return app, db, teacher.UserID
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
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

func createLesson(t *testing.T, app *fiber.App, name string) dto.LessonResponse {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodPost, "/api/a/lessons", fiber.Map{
		"name":  name,
		"group": "9. Sınıf",
		"type":  "TYT",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decodeData[dto.LessonResponse](t, resp)
}

func createTopic(t *testing.T, app *fiber.App, lessonID uuid.UUID, name string) dto.TopicResponse {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodPost, "/api/a/topics", fiber.Map{
		"lessonId": lessonID,
		"name":     name,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return decodeData[dto.TopicResponse](t, resp)
}

func TestLessonCreate_AutoColor(t *testing.T) {
	app, _, _ := setupTestApp(t)

	first := createLesson(t, app, "Matematik")
	assert.Equal(t, "blue", first.Color, "first lesson takes the first palette color")

	second := createLesson(t, app, "Türkçe")
	assert.Equal(t, "green", second.Color)
}

func TestTopicCreate_AppendsDenseOrder(t *testing.T) {
	app, _, _ := setupTestApp(t)
	lesson := createLesson(t, app, "Matematik")

	t1 := createTopic(t, app, lesson.ID, "Temel Kavramlar")
	t2 := createTopic(t, app, lesson.ID, "Sayı Basamakları")
	t3 := createTopic(t, app, lesson.ID, "Bölme ve Bölünebilme")

	assert.Equal(t, 1, t1.Order)
	assert.Equal(t, 2, t2.Order)
	assert.Equal(t, 3, t3.Order)
}

func TestTopicReorder_RewritesDense(t *testing.T) {
	app, _, _ := setupTestApp(t)
	lesson := createLesson(t, app, "Matematik")

	t1 := createTopic(t, app, lesson.ID, "Konu 1")
	t2 := createTopic(t, app, lesson.ID, "Konu 2")
	t3 := createTopic(t, app, lesson.ID, "Konu 3")

	resp := doJSON(t, app, fiber.MethodPut, "/api/a/topics/reorder", fiber.Map{
		"lessonId": lesson.ID,
		"topicIds": []uuid.UUID{t3.ID, t1.ID, t2.ID},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	topics := decodeData[[]dto.TopicResponse](t, resp)
	require.Len(t, topics, 3)
	assert.Equal(t, t3.ID, topics[0].ID)
	assert.Equal(t, t1.ID, topics[1].ID)
	assert.Equal(t, t2.ID, topics[2].ID)
	for i, topic := range topics {
		assert.Equal(t, i+1, topic.Order, "orders stay dense 1..N")
	}
}

func TestTopicReorder_RejectsPartialList(t *testing.T) {
	app, _, _ := setupTestApp(t)
	lesson := createLesson(t, app, "Matematik")

	t1 := createTopic(t, app, lesson.ID, "Konu 1")
	createTopic(t, app, lesson.ID, "Konu 2")

	resp := doJSON(t, app, fiber.MethodPut, "/api/a/topics/reorder", fiber.Map{
		"lessonId": lesson.ID,
		"topicIds": []uuid.UUID{t1.ID},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestTopicReorder_RejectsForeignTopic(t *testing.T) {
	app, _, _ := setupTestApp(t)
	lesson := createLesson(t, app, "Matematik")
	other := createLesson(t, app, "Türkçe")

	t1 := createTopic(t, app, lesson.ID, "Konu 1")
	foreign := createTopic(t, app, other.ID, "Sözcükte Anlam")

	resp := doJSON(t, app, fiber.MethodPut, "/api/a/topics/reorder", fiber.Map{
		"lessonId": lesson.ID,
		"topicIds": []uuid.UUID{t1.ID, foreign.ID},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestTopicDelete_CompactsOrder(t *testing.T) {
	app, _, _ := setupTestApp(t)
	lesson := createLesson(t, app, "Matematik")

	t1 := createTopic(t, app, lesson.ID, "Konu 1")
	t2 := createTopic(t, app, lesson.ID, "Konu 2")
	t3 := createTopic(t, app, lesson.ID, "Konu 3")

	resp := doJSON(t, app, fiber.MethodDelete, fmt.Sprintf("/api/a/topics/%s", t2.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, fmt.Sprintf("/api/a/lessons/%s/topics", lesson.ID), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	topics := decodeData[[]dto.TopicResponse](t, resp)
	require.Len(t, topics, 2)
	assert.Equal(t, t1.ID, topics[0].ID)
	assert.Equal(t, 1, topics[0].Order)
	assert.Equal(t, t3.ID, topics[1].ID)
	assert.Equal(t, 2, topics[1].Order)
}
