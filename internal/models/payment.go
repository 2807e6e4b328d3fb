package models

import "github.com/shopspring/decimal"

// PaymentResponseStatus is the outcome reported for a transfer attempt.
type PaymentResponseStatus string

const (
	// StatusSuccess means the processor moved the funds.
	StatusSuccess PaymentResponseStatus = "SUCCESS"
	// StatusFailed means the processor returned a structured decline.
	StatusFailed PaymentResponseStatus = "FAILED"
	// StatusError means the processor call itself faulted before
	// returning a response.
	StatusError PaymentResponseStatus = "ERROR"
)

// PaymentDetails describes a requested card-to-card transfer.
type PaymentDetails struct {
	Source      string          `json:"source"`
	Destination string          `json:"destination"`
	Amount      decimal.Decimal `json:"amount"`
}

// PaymentProcessorResponse is the structured outcome returned by the
// payment processor for a transfer request.
type PaymentProcessorResponse struct {
	PaymentID   string                `json:"payment_code"`
	Status      PaymentResponseStatus `json:"status"`
	Description string                `json:"description"`
}
