// file: internals/features/users/auth/controller/auth_controller_test.go
package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kocluk_backend/internals/configs"
	"kocluk_backend/internals/constants"
	"kocluk_backend/internals/databases/migrations"
	authModel "kocluk_backend/internals/features/users/auth/model"
	userModel "kocluk_backend/internals/features/users/user/model"
	helper "kocluk_backend/internals/helpers"
	"kocluk_backend/internals/middlewares"
)

func setupAuthApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "test-secret"
	configs.JWTRefreshSecret = "test-refresh-secret"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, migrations.Run(db))

	ctrl := NewAuthController(db)
	app := fiber.New()
	app.Post("/api/auth/login", ctrl.Login)
	app.Post("/api/auth/refresh", middlewares.CSRFGuard(), ctrl.Refresh)
	app.Post("/api/auth/logout", middlewares.CSRFGuard(), ctrl.Logout)
	return app, db
}

func seedTeacher(t *testing.T, db *gorm.DB, email, password string, subEnd *time.Time) userModel.UserModel {
	t.Helper()
	hash, err := helper.HashPassword(password)
	require.NoError(t, err)
	u := userModel.UserModel{
		UserName:                "Öğretmen",
		UserEmail:               email,
		UserPassword:            &hash,
		UserRole:                constants.RoleTeacher,
		UserSubscriptionEndDate: subEnd,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(fiber.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func cookieValue(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

func TestLogin_SetsSessionCookies(t *testing.T) {
	app, db := setupAuthApp(t)
	seedTeacher(t, db, "hoca@example.com", "sifre1234", nil)

	resp := postJSON(t, app, "/api/auth/login", fiber.Map{
		"email": "hoca@example.com", "password": "sifre1234",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.NotEmpty(t, cookieValue(resp, "access_token"))
	assert.NotEmpty(t, cookieValue(resp, "refresh_token"))
	assert.NotEmpty(t, cookieValue(resp, "csrf_token"))

	var envelope struct {
		Data struct {
			Role      string `json:"role"`
			CSRFToken string `json:"csrfToken"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, constants.RoleTeacher, envelope.Data.Role)
	assert.Equal(t, cookieValue(resp, "csrf_token"), envelope.Data.CSRFToken)
}

func TestLogin_WrongPassword(t *testing.T) {
	app, db := setupAuthApp(t)
	seedTeacher(t, db, "hoca@example.com", "sifre1234", nil)

	resp := postJSON(t, app, "/api/auth/login", fiber.Map{
		"email": "hoca@example.com", "password": "yanlis",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_UnknownEmailSameError(t *testing.T) {
	app, _ := setupAuthApp(t)
	resp := postJSON(t, app, "/api/auth/login", fiber.Map{
		"email": "yok@example.com", "password": "sifre1234",
	})
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLogin_ExpiredSubscriptionBlocked(t *testing.T) {
	app, db := setupAuthApp(t)
	past := time.Now().AddDate(0, -1, 0)
	seedTeacher(t, db, "hoca@example.com", "sifre1234", &past)

	resp := postJSON(t, app, "/api/auth/login", fiber.Map{
		"email": "hoca@example.com", "password": "sifre1234",
	})
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func postWithSession(t *testing.T, app *fiber.App, path, refresh, csrf string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, path, nil)
	req.Header.Set("Cookie", "refresh_token="+refresh+"; csrf_token="+csrf)
	req.Header.Set("X-CSRF-Token", csrf)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestRefresh_RotatesToken(t *testing.T) {
	app, db := setupAuthApp(t)
	seedTeacher(t, db, "hoca@example.com", "sifre1234", nil)

	login := postJSON(t, app, "/api/auth/login", fiber.Map{
		"email": "hoca@example.com", "password": "sifre1234",
	})
	require.Equal(t, fiber.StatusOK, login.StatusCode)
	oldRefresh := cookieValue(login, "refresh_token")
	csrf := cookieValue(login, "csrf_token")
	require.NotEmpty(t, oldRefresh)

	resp := postWithSession(t, app, "/api/auth/refresh", oldRefresh, csrf)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	newRefresh := cookieValue(resp, "refresh_token")
	assert.NotEmpty(t, newRefresh)
	assert.NotEqual(t, oldRefresh, newRefresh)

	// the rotated-away token is dead
	resp = postWithSession(t, app, "/api/auth/refresh", oldRefresh, csrf)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRefresh_BackToBackRotationsStayDistinct(t *testing.T) {
	app, db := setupAuthApp(t)
	seedTeacher(t, db, "hoca@example.com", "sifre1234", nil)

	login := postJSON(t, app, "/api/auth/login", fiber.Map{
		"email": "hoca@example.com", "password": "sifre1234",
	})
	refresh := cookieValue(login, "refresh_token")
	csrf := cookieValue(login, "csrf_token")

	// rotations issued within the same second must never reissue the
	// token they just revoked
	seen := map[string]bool{refresh: true}
	for i := 0; i < 3; i++ {
		resp := postWithSession(t, app, "/api/auth/refresh", refresh, csrf)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		next := cookieValue(resp, "refresh_token")
		require.NotEmpty(t, next)
		assert.False(t, seen[next], "refresh token reissued")
		seen[next] = true
		refresh = next
		csrf = cookieValue(resp, "csrf_token")
	}
}

func TestRefresh_MissingCSRFHeaderRejected(t *testing.T) {
	app, db := setupAuthApp(t)
	seedTeacher(t, db, "hoca@example.com", "sifre1234", nil)

	login := postJSON(t, app, "/api/auth/login", fiber.Map{
		"email": "hoca@example.com", "password": "sifre1234",
	})
	refresh := cookieValue(login, "refresh_token")
	csrf := cookieValue(login, "csrf_token")

	req := httptest.NewRequest(fiber.MethodPost, "/api/auth/refresh", nil)
	req.Header.Set("Cookie", "refresh_token="+refresh+"; csrf_token="+csrf)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	// the pair still works afterwards; the guard rejected before any rotation
	resp = postWithSession(t, app, "/api/auth/refresh", refresh, csrf)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestLogout_RevokesRefreshToken(t *testing.T) {
	app, db := setupAuthApp(t)
	seedTeacher(t, db, "hoca@example.com", "sifre1234", nil)

	login := postJSON(t, app, "/api/auth/login", fiber.Map{
		"email": "hoca@example.com", "password": "sifre1234",
	})
	refresh := cookieValue(login, "refresh_token")
	csrf := cookieValue(login, "csrf_token")
	require.NotEmpty(t, refresh)

	resp := postWithSession(t, app, "/api/auth/logout", refresh, csrf)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var count int64
	require.NoError(t, db.Model(&authModel.RefreshTokenModel{}).Count(&count).Error)
	assert.Zero(t, count, "logout drops the stored hash")
}
