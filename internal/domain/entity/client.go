package entity

import (
	"time"

	"github.com/google/uuid"
)

// Client is a customer of a single business.
type Client struct {
	ID         uuid.UUID
	Name       string
	Phone      *string
	Address    *string
	City       *string
	State      *string // Two-letter state code, upper-case.
	Notes      *string
	BusinessID uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
