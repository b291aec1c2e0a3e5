// Package middleware holds the echo middleware specific to the JSON API.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"autonomax/internal/delivery/api/response"
	deliverycontext "autonomax/internal/delivery/context"
	domainerrors "autonomax/internal/domain/errors"
	"autonomax/internal/errors"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("code", appErr.ErrorCode()),
				slog.String("path", c.Request().URL.Path),
			)
		}
		_ = response.AppError(c, appErr)

		return
	}

	if httpErr, ok := errors.AsType[*echo.HTTPError](err); ok {
		code, message := describeHTTPError(httpErr.Code)
		_ = response.Error(c, httpErr.Code, code, message, nil)

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())
}

// describeHTTPError maps echo's own errors (routing, binding, body limit) onto the API's codes.
func describeHTTPError(status int) (string, string) {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST", "Requisição inválida"
	case http.StatusUnauthorized:
		return domainerrors.ErrUnauthorized.ErrorCode(), domainerrors.ErrUnauthorized.Message()
	case http.StatusNotFound:
		return domainerrors.ErrNotFound.ErrorCode(), domainerrors.ErrNotFound.Message()
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED", "Método não permitido"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE", "Corpo da requisição muito grande"
	case http.StatusUnsupportedMediaType:
		return "UNSUPPORTED_MEDIA_TYPE", "Tipo de conteúdo não suportado"
	case http.StatusTooManyRequests:
		return domainerrors.ErrRateLimited.ErrorCode(), domainerrors.ErrRateLimited.Message()
	}
	if status >= http.StatusInternalServerError {
		return domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message()
	}

	return "HTTP_ERROR", http.StatusText(status)
}
