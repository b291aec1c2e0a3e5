package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business is a bookkeeping unit owned by one user. Clients, products and
// transactions all hang off a business and are removed with it.
type Business struct {
	ID          uuid.UUID
	Name        string  // Required, at most 50 characters.
	Document    *string // Optional tax document (CPF/CNPJ).
	OwnerUserID uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
