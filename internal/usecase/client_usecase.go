package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"autonomax/internal/domain/entity"
)

// ClientInput is the writable part of a client.
type ClientInput struct {
	Name    string
	Phone   *string
	Address *string
	City    *string
	State   *string
	Notes   *string
}

// ClientRanking is one row of a client revenue ranking.
type ClientRanking struct {
	ClientID uuid.UUID
	Name     string
	Total    decimal.Decimal
	Count    int
}

// ClientUsecase manages the clients of the caller's businesses.
type ClientUsecase interface {
	ListByBusiness(ctx context.Context, userID, businessID uuid.UUID) ([]*entity.Client, error)
	Get(ctx context.Context, userID, clientID uuid.UUID) (*entity.Client, error)
	Create(ctx context.Context, userID, businessID uuid.UUID, input *ClientInput) (*entity.Client, error)
	Update(ctx context.Context, userID, clientID uuid.UUID, input *ClientInput) (*entity.Client, error)
	Delete(ctx context.Context, userID, clientID uuid.UUID) error
	// Ranking returns the top clients of a business by income.
	Ranking(ctx context.Context, userID, businessID uuid.UUID) ([]ClientRanking, error)
}
