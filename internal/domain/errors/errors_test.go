package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseErrorWithDetailsMatchesSentinel(t *testing.T) {
	err := ErrNotFound.WithDetails("cliente")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "cliente", err.Details())
	assert.Empty(t, ErrNotFound.Details())
	assert.Equal(t, "Recurso não encontrado: cliente", err.Error())
}

func TestSharedValidationCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ErrInvalidKind.HTTPCode())
	assert.Equal(t, ErrValidationFailed.ErrorCode(), ErrInvalidKind.ErrorCode())
	assert.Equal(t, ErrValidationFailed.ErrorCode(), ErrClientOutsideBusiness.ErrorCode())
	// Same code, different message: errors.Is treats them as the same class.
	assert.ErrorIs(t, ErrClientOutsideBusiness, ErrValidationFailed)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError(
		FieldError{Field: "valor", Rule: "gt", Param: "0"},
		FieldError{Field: "tipo", Rule: "oneof", Param: "Entrada Saida"},
	)

	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "valor, tipo", err.Details())
	assert.Len(t, err.Fields(), 2)

	var appErr AppError = err
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "listing clients")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Contains(t, err.Error(), "connection reset")
}
