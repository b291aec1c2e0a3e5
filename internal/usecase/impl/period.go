package impl

import (
	"strconv"
	"time"

	domainerrors "autonomax/internal/domain/errors"
)

const (
	minYear = 2000
	maxYear = 2100
)

func validateYear(year int) error {
	if year < minYear || year > maxYear {
		return domainerrors.NewValidationError(domainerrors.FieldError{
			Field: "ano",
			Rule:  "range",
			Param: strconv.Itoa(minYear) + "-" + strconv.Itoa(maxYear),
		})
	}

	return nil
}

func validatePeriod(month, year int) error {
	var fields []domainerrors.FieldError
	if month < 1 || month > 12 {
		fields = append(fields, domainerrors.FieldError{Field: "mes", Rule: "range", Param: "1-12"})
	}
	if year < minYear || year > maxYear {
		fields = append(fields, domainerrors.FieldError{
			Field: "ano",
			Rule:  "range",
			Param: strconv.Itoa(minYear) + "-" + strconv.Itoa(maxYear),
		})
	}
	if len(fields) > 0 {
		return domainerrors.NewValidationError(fields...)
	}

	return nil
}

// monthRange is the half-open UTC interval [first day of month, first day of next month).
func monthRange(month, year int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)

	return from, from.AddDate(0, 1, 0)
}

// yearRange is the half-open UTC interval covering year.
func yearRange(year int) (time.Time, time.Time) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)

	return from, from.AddDate(1, 0, 0)
}
