// Package response renders API bodies. Successful responses carry the
// resource itself; failures use the ErrorResponse envelope.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	deliverycontext "autonomax/internal/delivery/context"
	domainerrors "autonomax/internal/domain/errors"
	"autonomax/internal/errors"
)

// Success writes data as the whole response body.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// OK writes data with 200.
func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data)
}

// Created writes data with 201.
func Created(c echo.Context, data any) error {
	return Success(c, http.StatusCreated, data)
}

// NoContent answers 204 with an empty body.
func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Success: false,
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &domainerrors.MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// AppError renders a domain error with its own status and code.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), detailsOf(appErr))
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// detailsOf prefers structured field errors over the plain details string.
func detailsOf(appErr domainerrors.AppError) any {
	if vErr, ok := errors.AsType[*domainerrors.ValidationError](appErr); ok {
		return vErr.Fields()
	}
	if d := appErr.Details(); d != "" {
		return d
	}

	return nil
}
