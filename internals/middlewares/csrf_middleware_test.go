// file: internals/middlewares/csrf_middleware_test.go
package middlewares

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func csrfTestApp() *fiber.App {
	app := fiber.New()
	app.Use(CSRFGuard())
	app.Get("/x", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Post("/x", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestCSRFGuard_GetPassesWithoutToken(t *testing.T) {
	app := csrfTestApp()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestCSRFGuard_PostWithoutCookieRejected(t *testing.T) {
	app := csrfTestApp()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCSRFGuard_PostWithMismatchedPairRejected(t *testing.T) {
	app := csrfTestApp()
	req := httptest.NewRequest(fiber.MethodPost, "/x", nil)
	req.Header.Set("Cookie", "csrf_token=aaa")
	req.Header.Set("X-CSRF-Token", "bbb")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestCSRFGuard_PostWithMatchingPairPasses(t *testing.T) {
	app := csrfTestApp()
	req := httptest.NewRequest(fiber.MethodPost, "/x", nil)
	req.Header.Set("Cookie", "csrf_token=tok123")
	req.Header.Set("X-CSRF-Token", "tok123")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
