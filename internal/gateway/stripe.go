package gateway

import (
	"context"
	"fmt"

	"cardpay/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/paymentintent"
)

// StripeGateway moves funds through Stripe payment intents.
type StripeGateway struct {
	currency string
}

func NewStripeGateway(apiKey, currency string) *StripeGateway {
	stripe.Key = apiKey
	return &StripeGateway{currency: currency}
}

func (g *StripeGateway) Transfer(ctx context.Context, details models.PaymentDetails) (*models.PaymentProcessorResponse, error) {
	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(minorUnits(details.Amount)),
		Currency:    stripe.String(g.currency),
		Description: stripe.String(fmt.Sprintf("card transfer to %s", details.Destination)),
	}
	params.Context = ctx
	params.AddMetadata("source_card", details.Source)
	params.AddMetadata("destination_card", details.Destination)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe payment intent failed: %w", err)
	}

	return &models.PaymentProcessorResponse{
		PaymentID:   pi.ID,
		Status:      mapStripeStatus(pi.Status),
		Description: describeStripeStatus(pi.Status),
	}, nil
}

func mapStripeStatus(status stripe.PaymentIntentStatus) models.PaymentResponseStatus {
	switch status {
	case stripe.PaymentIntentStatusSucceeded:
		return models.StatusSuccess
	default:
		return models.StatusFailed
	}
}

func describeStripeStatus(status stripe.PaymentIntentStatus) string {
	if status == stripe.PaymentIntentStatusSucceeded {
		return "transfer completed"
	}
	return fmt.Sprintf("transfer not completed: %s", status)
}

// minorUnits converts a decimal amount to the processor's integer minor
// units, e.g. 50.00 -> 5000.
func minorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).IntPart()
}
