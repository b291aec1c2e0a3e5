// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"autonomax/config"
	"autonomax/internal/domain/service"
)

// Bounds for the bcrypt work factor. Below the minimum offline guessing is
// cheap; above the maximum a login takes well over half a second.
const (
	MinBcryptCost = 10
	MaxBcryptCost = 14
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher builds the hasher with the configured cost.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := 0
	if cfg != nil && cfg.Auth != nil {
		cost = cfg.Auth.BcryptCost
	}

	return NewBcryptHasherWithCost(cost)
}

// NewBcryptHasherWithCost clamps cost into [MinBcryptCost, MaxBcryptCost].
func NewBcryptHasherWithCost(cost int) service.PasswordHasher {
	return &bcryptHasher{cost: clampCost(cost)}
}

func clampCost(cost int) int {
	switch {
	case cost < MinBcryptCost:
		return MinBcryptCost
	case cost > MaxBcryptCost:
		return MaxBcryptCost
	default:
		return cost
	}
}

// Hash generates a salted hash. The result embeds algorithm, cost and salt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err //nolint:wrapcheck // bcrypt errors are already descriptive
	}

	return string(bytes), nil
}

// Check fails closed: a mismatch and a malformed hash both return false.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
