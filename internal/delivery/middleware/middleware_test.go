package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autonomax/config"
	deliverycontext "autonomax/internal/delivery/context"
)

func newServer(buf *bytes.Buffer, debug bool) *echo.Echo {
	logger := slog.New(slog.NewJSONHandler(buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/api/ping", func(c echo.Context) error {
		id := deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.String(http.StatusOK, id)
	})
	e.GET("/healthz", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	return e
}

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	e := newServer(&buf, false)

	t.Run("keeps the client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "abc-123")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.Equal(t, "abc-123", rec.Body.String())
	})

	t.Run("replaces an oversized id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, strings.Repeat("x", 500))
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		got := rec.Header().Get(deliverycontext.HeaderXRequestID)
		assert.Len(t, got, 36)
		assert.Equal(t, got, rec.Body.String())
	})
}

func TestLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	e := newServer(&buf, false)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Empty(t, buf.String())

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-9")
	e.ServeHTTP(httptest.NewRecorder(), req)

	line := buf.String()
	require.NotEmpty(t, line)
	assert.Contains(t, line, `"msg":"HTTP Request"`)
	assert.Contains(t, line, `"request_id":"req-9"`)
	assert.Contains(t, line, `"route":"/api/ping"`)
	assert.Contains(t, line, `"status":200`)
}
