package repository

import (
	"context"

	"github.com/google/uuid"

	"autonomax/internal/domain/entity"
	"autonomax/internal/errors"
)

// ErrClientNotFound is returned when a client does not exist.
var ErrClientNotFound = errors.New("client not found")

// ClientRepository persists the clients of a business.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	// FindByIDs returns the clients that exist among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Client, error)
	// ListByBusiness returns the business's clients ordered by name.
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	Delete(ctx context.Context, id uuid.UUID) error
}
