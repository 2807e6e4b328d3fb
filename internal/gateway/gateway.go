// Package gateway contains clients for the external payment processor
// that performs the actual funds movement.
package gateway

import (
	"context"

	"cardpay/internal/models"
)

// Gateway submits a transfer to the payment processor. A returned
// response carries the processor's verdict (SUCCESS or FAILED); an error
// means the call itself faulted and no verdict exists.
type Gateway interface {
	Transfer(ctx context.Context, details models.PaymentDetails) (*models.PaymentProcessorResponse, error)
}
