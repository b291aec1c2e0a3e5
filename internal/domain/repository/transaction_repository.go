package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"autonomax/internal/domain/entity"
	"autonomax/internal/errors"
)

// ErrTransactionNotFound is returned when a ledger entry does not exist.
var ErrTransactionNotFound = errors.New("transaction not found")

// TransactionFilter narrows a ledger listing. BusinessID is mandatory.
// From is inclusive and To is exclusive. Nil bounds are open.
type TransactionFilter struct {
	BusinessID uuid.UUID
	ClientID   *uuid.UUID
	From       *time.Time
	To         *time.Time
}

// TransactionRepository persists ledger entries together with their line items.
type TransactionRepository interface {
	// Create inserts the transaction and all of its items.
	Create(ctx context.Context, txn *entity.Transaction) error

	// FindByID loads a transaction with its client and items.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// List returns matching transactions with client and items preloaded,
	// newest first.
	List(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// Delete removes the transaction and its items.
	Delete(ctx context.Context, id uuid.UUID) error
}
