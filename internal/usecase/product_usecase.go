package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"autonomax/internal/domain/entity"
)

// ProductInput is the writable part of a product or service.
type ProductInput struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	IsService   bool
}

// ProductUsecase manages the catalogue of the caller's businesses.
type ProductUsecase interface {
	ListByBusiness(ctx context.Context, userID, businessID uuid.UUID) ([]*entity.Product, error)
	Create(ctx context.Context, userID, businessID uuid.UUID, input *ProductInput) (*entity.Product, error)
	Delete(ctx context.Context, userID, productID uuid.UUID) error
}
