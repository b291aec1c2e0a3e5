package service

import (
	"time"

	"github.com/google/uuid"

	"autonomax/internal/domain/entity"
	"autonomax/internal/errors"
)

// Token validation failures. Callers reject all three the same way and only
// log which one occurred.
var (
	ErrTokenMalformed    = errors.New("token malformed")
	ErrTokenBadSignature = errors.New("token signature invalid")
	ErrTokenExpired      = errors.New("token expired")
)

// UserClaims is the identity carried by a validated access token.
type UserClaims struct {
	UserID    uuid.UUID
	Name      string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and validates stateless bearer tokens.
type TokenService interface {
	// Issue signs a token for user and returns it with its expiry.
	Issue(user *entity.User) (token string, expiresAt time.Time, err error)

	// Validate verifies the signature before reading any claim. The returned
	// error is one of ErrTokenMalformed, ErrTokenBadSignature or ErrTokenExpired.
	Validate(token string) (*UserClaims, error)
}
