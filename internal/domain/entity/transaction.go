package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Kind tags a transaction as money coming in or going out.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

// Wire labels used by the API and stored in the database.
const (
	kindIncomeLabel  = "Entrada"
	kindExpenseLabel = "Saida"
)

// ParseKind maps a wire label to a Kind. Matching is exact.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case kindIncomeLabel:
		return KindIncome, true
	case kindExpenseLabel:
		return KindExpense, true
	default:
		return "", false
	}
}

// Label returns the wire label for k.
func (k Kind) Label() string {
	switch k {
	case KindIncome:
		return kindIncomeLabel
	case KindExpense:
		return kindExpenseLabel
	default:
		return string(k)
	}
}

// Valid reports whether k is one of the two known kinds.
func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Transaction is a single ledger entry of a business.
type Transaction struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal // Strictly positive.
	Kind        Kind
	Date        time.Time
	BusinessID  uuid.UUID
	ClientID    *uuid.UUID // nil for entries without a client, typically expenses.
	Client      *Client    // Populated by list queries that preload the client.
	Items       []LineItem
	CreatedAt   time.Time
}

// IsIncome reports whether t adds money to the business.
func (t *Transaction) IsIncome() bool {
	return t.Kind == KindIncome
}

// LineItem is a quantified sub-record of a transaction. It has no life of its own.
type LineItem struct {
	ID            uuid.UUID
	Name          string
	Quantity      int
	TransactionID uuid.UUID
}

// NormalizedName is the grouping key for item rankings.
func (i LineItem) NormalizedName() string {
	return strings.TrimSpace(i.Name)
}
