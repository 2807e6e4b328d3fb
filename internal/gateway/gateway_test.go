package gateway

import (
	"context"
	"testing"

	"cardpay/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stripe/stripe-go/v72"
)

func TestMinorUnits(t *testing.T) {
	tests := []struct {
		amount string
		want   int64
	}{
		{"50.00", 5000},
		{"0.01", 1},
		{"19.99", 1999},
		{"100", 10000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, minorUnits(decimal.RequireFromString(tt.amount)), "amount %s", tt.amount)
	}
}

func TestMapStripeStatus(t *testing.T) {
	assert.Equal(t, models.StatusSuccess, mapStripeStatus(stripe.PaymentIntentStatusSucceeded))
	assert.Equal(t, models.StatusFailed, mapStripeStatus(stripe.PaymentIntentStatusRequiresPaymentMethod))
	assert.Equal(t, models.StatusFailed, mapStripeStatus(stripe.PaymentIntentStatusCanceled))
}

func TestLocalGateway(t *testing.T) {
	g := NewLocalGateway()

	t.Run("approves positive amounts", func(t *testing.T) {
		resp, err := g.Transfer(context.Background(), models.PaymentDetails{
			Source:      "4111",
			Destination: "4222",
			Amount:      decimal.RequireFromString("50.00"),
		})
		assert.NoError(t, err)
		assert.Equal(t, models.StatusSuccess, resp.Status)
		assert.NotEmpty(t, resp.PaymentID)
	})

	t.Run("declines non-positive amounts", func(t *testing.T) {
		resp, err := g.Transfer(context.Background(), models.PaymentDetails{
			Source:      "4111",
			Destination: "4222",
			Amount:      decimal.Zero,
		})
		assert.NoError(t, err)
		assert.Equal(t, models.StatusFailed, resp.Status)
	})
}
