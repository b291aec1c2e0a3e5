package usecase

import (
	"context"

	"github.com/google/uuid"

	"autonomax/internal/domain/entity"
)

// BusinessInput is the writable part of a business.
type BusinessInput struct {
	Name     string
	Document *string
}

// BusinessUsecase manages the caller's businesses. Every method is scoped to
// userID; a business owned by someone else behaves as if it did not exist.
type BusinessUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Business, error)
	Get(ctx context.Context, userID, businessID uuid.UUID) (*entity.Business, error)
	Create(ctx context.Context, userID uuid.UUID, input *BusinessInput) (*entity.Business, error)
	Update(ctx context.Context, userID, businessID uuid.UUID, input *BusinessInput) (*entity.Business, error)
	Delete(ctx context.Context, userID, businessID uuid.UUID) error
}
