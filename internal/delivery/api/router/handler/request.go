package handler

import (
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	deliverycontext "autonomax/internal/delivery/context"
	domainerrors "autonomax/internal/domain/errors"
)

// trimmer is implemented by request bodies whose text fields are trimmed
// before validation, so length rules see what gets stored.
type trimmer interface {
	trim()
}

// bindAndValidate decodes the request into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("corpo da requisição inválido")
	}
	if t, ok := req.(trimmer); ok {
		t.trim()
	}

	return c.Validate(req)
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}

// bindQuery decodes only the query string into req and validates it.
func bindQuery(c echo.Context, req any) error {
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("parâmetros de consulta inválidos")
	}

	return c.Validate(req)
}

// callerID returns the authenticated user. Routes without the auth
// middleware never call it.
func callerID(c echo.Context) (uuid.UUID, error) {
	id, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return id, nil
}

// pathID parses the named path parameter as a UUID.
func pathID(c echo.Context, name string) (uuid.UUID, error) {
	return parseID(c.Param(name), name)
}

func parseID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: field, Rule: "uuid"})
	}

	return id, nil
}

// optionalYear reads ?ano when present. Range checks happen in the use case.
func optionalYear(c echo.Context) (*int, error) {
	if c.QueryParam("ano") == "" {
		return nil, nil
	}

	var year int
	if err := echo.QueryParamsBinder(c).Int("ano", &year).BindError(); err != nil {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "ano", Rule: "numeric"})
	}

	return &year, nil
}
