package repository

import (
	"context"

	"github.com/google/uuid"

	"autonomax/internal/domain/entity"
	"autonomax/internal/errors"
)

// ErrBusinessNotFound is returned when a business does not exist.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessRepository persists businesses. Callers are responsible for
// checking ownership of whatever they load.
type BusinessRepository interface {
	Create(ctx context.Context, business *entity.Business) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)
	// ListByOwner returns the owner's businesses ordered by name.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Business, error)
	Update(ctx context.Context, business *entity.Business) error
	// Delete removes the business. Clients, products and transactions go with it.
	Delete(ctx context.Context, id uuid.UUID) error
}
