package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ads-api/pkg/logger"
	"ads-api/pkg/utils"
)

const secret = "middleware-secret"

func newProtectedApp() *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler()})
	app.Use(RequestIDMiddleware(), LoggerMiddleware())

	app.Get("/me", Protected(secret), func(c *fiber.Ctx) error {
		user, err := utils.GetUserFromContext(c)
		if err != nil {
			return err
		}
		return c.SendString(user.ID.String())
	})
	app.Get("/admin", Protected(secret), AdminOnly(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/request-id", func(c *fiber.Ctx) error {
		return c.SendString(logger.GetRequestID(c.UserContext()))
	})
	return app
}

func get(t *testing.T, app *fiber.App, path string, headers map[string]string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func bearer(t *testing.T, userID uuid.UUID, role string, ttl time.Duration) map[string]string {
	t.Helper()
	tok, err := utils.GenerateToken(userID, "", role, secret, ttl)
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + tok}
}

func TestProtected(t *testing.T) {
	app := newProtectedApp()
	userID := uuid.New()

	tests := []struct {
		name    string
		headers map[string]string
		status  int
	}{
		{"no header", nil, http.StatusUnauthorized},
		{"wrong scheme", map[string]string{"Authorization": "Token abc"}, http.StatusUnauthorized},
		{"garbage token", map[string]string{"Authorization": "Bearer abc"}, http.StatusUnauthorized},
		{"expired", bearer(t, userID, "user", -time.Minute), http.StatusUnauthorized},
		{"valid", bearer(t, userID, "user", time.Hour), http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := get(t, app, "/me", tt.headers)
			assert.Equal(t, tt.status, resp.StatusCode)
		})
	}
}

func TestAdminOnly(t *testing.T) {
	app := newProtectedApp()

	resp := get(t, app, "/admin", bearer(t, uuid.New(), "user", time.Hour))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = get(t, app, "/admin", bearer(t, uuid.New(), "admin", time.Hour))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequestID(t *testing.T) {
	app := newProtectedApp()

	resp := get(t, app, "/request-id", map[string]string{RequestIDHeader: "req-123"})
	assert.Equal(t, "req-123", resp.Header.Get(RequestIDHeader))

	resp = get(t, app, "/request-id", map[string]string{RequestIDHeader: strings.Repeat("x", 65)})
	generated := resp.Header.Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err, "oversized id is replaced")

	resp = get(t, app, "/request-id", nil)
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))
}

func TestErrorHandler_UnknownRoute(t *testing.T) {
	app := newProtectedApp()

	resp := get(t, app, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
