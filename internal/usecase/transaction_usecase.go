package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"autonomax/internal/domain/entity"
	"autonomax/internal/ledger"
)

// LineItemInput is one item of a new transaction.
type LineItemInput struct {
	Name     string
	Quantity int
}

// CreateTransactionInput describes a new ledger entry. A zero Date means now.
type CreateTransactionInput struct {
	Description string
	Amount      decimal.Decimal
	Kind        entity.Kind
	Date        time.Time
	BusinessID  uuid.UUID
	ClientID    *uuid.UUID
	Items       []LineItemInput
}

// MonthlyStatement is the ledger of one month with its totals.
type MonthlyStatement struct {
	Summary      ledger.Summary
	Transactions []*entity.Transaction
}

// ClientStatement is a client with every transaction attributed to them.
type ClientStatement struct {
	Client       *entity.Client
	Transactions []*entity.Transaction
}

// TransactionUsecase records and lists ledger entries of the caller's businesses.
// Listings are newest first with client and items included.
type TransactionUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, input *CreateTransactionInput) (*entity.Transaction, error)
	Get(ctx context.Context, userID, transactionID uuid.UUID) (*entity.Transaction, error)
	Delete(ctx context.Context, userID, transactionID uuid.UUID) error

	ListByPeriod(ctx context.Context, userID, businessID uuid.UUID, month, year int) ([]*entity.Transaction, error)
	// ListByBusiness lists everything, or only one year when year is non-nil.
	ListByBusiness(ctx context.Context, userID, businessID uuid.UUID, year *int) ([]*entity.Transaction, error)
	ListByClient(ctx context.Context, userID, businessID, clientID uuid.UUID) (*ClientStatement, error)
	Monthly(ctx context.Context, userID, businessID uuid.UUID, month, year int) (*MonthlyStatement, error)
}
