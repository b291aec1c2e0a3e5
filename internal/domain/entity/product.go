package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is an item or service a business sells.
type Product struct {
	ID          uuid.UUID
	Name        string
	Description *string
	Price       decimal.Decimal
	IsService   bool // true for services (consulting), false for goods.
	BusinessID  uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
