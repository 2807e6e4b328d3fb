package gateway

import (
	"context"

	"cardpay/internal/models"

	"github.com/google/uuid"
)

// LocalGateway approves transfers without calling any processor. It is
// used in development and by the seeder.
type LocalGateway struct{}

func NewLocalGateway() *LocalGateway { return &LocalGateway{} }

func (g *LocalGateway) Transfer(_ context.Context, details models.PaymentDetails) (*models.PaymentProcessorResponse, error) {
	if !details.Amount.IsPositive() {
		return &models.PaymentProcessorResponse{
			PaymentID:   "loc_" + uuid.NewString(),
			Status:      models.StatusFailed,
			Description: "transfer not completed: amount must be positive",
		}, nil
	}
	return &models.PaymentProcessorResponse{
		PaymentID:   "loc_" + uuid.NewString(),
		Status:      models.StatusSuccess,
		Description: "transfer completed",
	}, nil
}
