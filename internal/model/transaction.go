package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionKind string

const (
	TxPurchase   TransactionKind = "PURCHASE"
	TxAdjustment TransactionKind = "ADJUSTMENT"
	TxDeposit    TransactionKind = "DEPOSIT"
)

// Transaction is an append-only ledger row. Purchases carry a negative amount
// and reference the snack bought; adjustments and deposits have no snack.
type Transaction struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	SnackID   *uuid.UUID      `gorm:"type:uuid;index" json:"snack_id,omitempty"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Kind      TransactionKind `gorm:"type:varchar(20);not null" json:"kind"`
	CreatedBy string          `gorm:"type:varchar(255)" json:"created_by,omitempty"`
	CreatedAt time.Time       `gorm:"not null;index" json:"created_at"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return
}

// TransactionView joins a ledger row with the current user and snack records
// at read time. Snack fields are nil for rows without a snack.
type TransactionView struct {
	ID              uuid.UUID           `json:"id"`
	UserID          uuid.UUID           `json:"user_id"`
	UserEmail       string              `json:"user_email"`
	UserDisplayName string              `json:"user_display_name"`
	SnackID         *uuid.UUID          `json:"snack_id"`
	SnackName       *string             `json:"snack_name"`
	SnackPrice      decimal.NullDecimal `json:"snack_price"`
	SnackImageURL   *string             `json:"snack_image_url"`
	Amount          decimal.Decimal     `json:"amount"`
	Kind            TransactionKind     `json:"kind"`
	CreatedAt       time.Time           `json:"created_at"`
}
