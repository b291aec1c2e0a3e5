// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. Every Business belongs to exactly one User.
type User struct {
	ID           uuid.UUID // Global unique identifier of the account.
	Name         string    // Display name, 3 to 100 characters.
	Email        string    // Login identifier, unique, stored lower-cased.
	PasswordHash string    // Self-describing bcrypt hash. Never the plaintext.
	CreatedAt    time.Time // When the account was registered.
	UpdatedAt    time.Time // Last modification.
}
