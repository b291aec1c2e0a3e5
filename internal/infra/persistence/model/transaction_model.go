package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionModel mirrors the 'transactions' table. Kind holds the wire
// label ("Entrada" or "Saida"), enforced by a CHECK constraint.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Description string          `gorm:"type:varchar(200);not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Kind        string          `gorm:"type:varchar(10);not null"`
	OccurredAt  time.Time       `gorm:"not null;index"`
	BusinessID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ClientID    *uuid.UUID      `gorm:"type:uuid;index"`
	CreatedAt   time.Time

	Client *ClientModel    `gorm:"foreignKey:ClientID"`
	Items  []LineItemModel `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (TransactionModel) TableName() string {
	return "transactions"
}

// LineItemModel mirrors the 'line_items' table.
type LineItemModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name          string    `gorm:"type:varchar(100);not null"`
	Quantity      int       `gorm:"not null"`
	Position      int       `gorm:"not null;default:0"`
	TransactionID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (LineItemModel) TableName() string {
	return "line_items"
}
