package postgres

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// These rely on gorm.Config.TranslateError, which maps driver error codes
// to gorm sentinels.

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}
