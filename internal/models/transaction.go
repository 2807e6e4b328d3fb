package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentTransaction records one transfer attempt from a source card.
// Exactly one row is written per attempt regardless of the outcome, and
// rows are never updated or deleted afterwards.
//
// PaymentID is the processor-assigned identifier. It is nil when the
// processor call faulted before returning one; Reference is our own
// identifier and is always set.
type PaymentTransaction struct {
	ID                    uint                  `gorm:"primarykey" json:"-"`
	PaymentID             *string               `gorm:"uniqueIndex" json:"payment_code,omitempty"`
	Reference             string                `gorm:"uniqueIndex;not null" json:"reference"`
	DestinationCardNumber string                `gorm:"not null" json:"destination_card_number"`
	TransactionDate       int                   `gorm:"not null;index" json:"transaction_date"`
	AmountTransaction     decimal.Decimal       `gorm:"type:numeric(19,4);not null" json:"amount"`
	Description           string                `gorm:"not null" json:"description"`
	Result                PaymentResponseStatus `gorm:"type:varchar(16);not null" json:"result"`
	CardID                uint                  `gorm:"not null;index" json:"-"`
	CreatedAt             time.Time             `json:"-"`
}

// DateInt encodes a calendar date as a zero-padded YYYYMMDD integer,
// e.g. 2026-01-09 -> 20260109. Values sort and range-compare correctly.
func DateInt(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
