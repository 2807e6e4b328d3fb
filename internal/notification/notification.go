// Package notification delivers best-effort transfer alerts. Delivery
// failures never affect the transfer outcome.
package notification

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Sender notifies the destination card holder about an incoming transfer.
type Sender interface {
	Notify(ctx context.Context, destinationCardNumber string, amount decimal.Decimal, at time.Time) error
}
