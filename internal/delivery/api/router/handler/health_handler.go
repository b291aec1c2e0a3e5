package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"autonomax/internal/delivery/api/response"
	deliverycontext "autonomax/internal/delivery/context"
)

const healthTimeout = 2 * time.Second

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Database HealthChecker
	Logger   *slog.Logger
}

// HealthHandler serves the liveness check.
type HealthHandler struct {
	database HealthChecker
	logger   *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{database: params.Database, logger: params.Logger}
}

type healthResponse struct {
	Status string `json:"status"`
}

// Healthz answers 200 while the database is reachable and 503 otherwise.
func (h *HealthHandler) Healthz(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()

	if err := h.database.Ping(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("Health check failed", slog.Any("error", err))

		return response.Success(c, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
	}

	return response.OK(c, healthResponse{Status: "ok"})
}
