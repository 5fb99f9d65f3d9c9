package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestSecurityHeadersMiddleware(t *testing.T) {
	t.Run("sets standard security headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := echo.New().NewContext(req, rec)

		handler := SecurityHeaders(func(ctx echo.Context) error {
			return ctx.String(http.StatusOK, "OK")
		})

		err := handler(ctx)

		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		headers := rec.Header()
		assert.Equal(t, "max-age=31536000; includeSubDomains", headers.Get("Strict-Transport-Security"))
		assert.Equal(t, "nosniff", headers.Get("X-Content-Type-Options"))
		assert.Equal(t, "DENY", headers.Get("X-Frame-Options"))
		assert.Equal(t, "1; mode=block", headers.Get("X-XSS-Protection"))
		assert.Equal(t, "no-referrer", headers.Get("Referrer-Policy"))
		assert.NotEmpty(t, headers.Get("Permissions-Policy"))
	})

	t.Run("sets restrictive CSP", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/entities", nil)
		rec := httptest.NewRecorder()
		ctx := echo.New().NewContext(req, rec)

		handler := SecurityHeaders(func(ctx echo.Context) error {
			return ctx.String(http.StatusOK, "OK")
		})

		err := handler(ctx)

		assert.NoError(t, err)
		csp := rec.Header().Get("Content-Security-Policy")
		assert.Contains(t, csp, "default-src 'none'")
		assert.Contains(t, csp, "script-src 'none'")
	})
}

func TestNoCacheMiddleware(t *testing.T) {
	t.Run("sets no-cache headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := echo.New().NewContext(req, rec)

		handler := NoCache(func(ctx echo.Context) error {
			return ctx.String(http.StatusOK, "OK")
		})

		err := handler(ctx)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		headers := rec.Header()
		assert.Equal(t, "no-store, max-age=0", headers.Get("Cache-Control"))
		assert.Equal(t, "no-cache", headers.Get("Pragma"))
		assert.Equal(t, "0", headers.Get("Expires"))
	})
}

func TestSensitivityMiddleware(t *testing.T) {
	t.Run("sets endpoint sensitivity in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := echo.New().NewContext(req, rec)

		sensitivityMw := Sensivity(DefaultEndpoint)
		handler := sensitivityMw(func(ctx echo.Context) error {
			return ctx.String(http.StatusOK, "OK")
		})

		err := handler(ctx)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("GetSensivity returns set sensitivity", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		ctx := echo.New().NewContext(req, rec)

		sensitivityMw := Sensivity(SensitiveEndpoint)
		handler := sensitivityMw(func(ctx echo.Context) error {
			sensitivity := GetSensivity(ctx)
			assert.Equal(t, SensitiveEndpoint, sensitivity)
			return ctx.String(http.StatusOK, "OK")
		})

		err := handler(ctx)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("endpoint sensitivity constants are valid", func(t *testing.T) {
		assert.NotEqual(t, InsignificantEndpoint, DefaultEndpoint)
		assert.NotEqual(t, DefaultEndpoint, SensitiveEndpoint)
		assert.NotEqual(t, InsignificantEndpoint, SensitiveEndpoint)

		assert.NoError(t, InsignificantEndpoint.Validate())
		assert.NoError(t, DefaultEndpoint.Validate())
		assert.NoError(t, SensitiveEndpoint.Validate())
	})
}
