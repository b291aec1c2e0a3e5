package repository

import (
	"context"

	"github.com/google/uuid"

	"autonomax/internal/domain/entity"
	"autonomax/internal/errors"
)

// ErrProductNotFound is returned when a product does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository persists the product and service catalogue of a business.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
