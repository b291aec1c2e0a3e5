package impl

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	domainerrors "autonomax/internal/domain/errors"
)

// moneyPlaces is the scale of every stored amount.
const moneyPlaces = 2

// optional trims s and drops it when nothing is left.
func optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}

	return &v
}

func optionalUpper(s *string) *string {
	v := optional(s)
	if v == nil {
		return nil
	}
	upper := strings.ToUpper(*v)

	return &upper
}

// requiredName trims name and checks it still has at least minLen characters.
func requiredName(name string, minLen int) (string, error) {
	v := strings.TrimSpace(name)
	switch {
	case v == "":
		return "", domainerrors.NewValidationError(domainerrors.FieldError{Field: "nome", Rule: "required"})
	case utf8.RuneCountInString(v) < minLen:
		return "", domainerrors.NewValidationError(
			domainerrors.FieldError{Field: "nome", Rule: "min", Param: strconv.Itoa(minLen)},
		)
	}

	return v, nil
}

// hasCents reports whether d fits the stored scale without rounding.
func hasCents(d decimal.Decimal) bool {
	return d.Equal(d.Round(moneyPlaces))
}
