package model

import (
	"time"

	"github.com/google/uuid"
)

// ClientModel mirrors the 'clients' table.
type ClientModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Phone      *string   `gorm:"type:varchar(20)"`
	Address    *string   `gorm:"type:varchar(200)"`
	City       *string   `gorm:"type:varchar(100)"`
	State      *string   `gorm:"type:char(2)"`
	Notes      *string   `gorm:"type:varchar(500)"`
	BusinessID uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ClientModel) TableName() string {
	return "clients"
}
