package card

import (
	"context"

	"cardpay/internal/models"
)

// MemberDirectory checks member existence.
type MemberDirectory interface {
	Exists(memberNumber int64) (bool, error)
}

// CardStore is the persistence contract for cards.
type CardStore interface {
	GetByMember(memberNumber int64) ([]models.Card, error)
	GetByNumberAndMember(cardNumber string, memberNumber int64) (*models.Card, error)
	Create(card *models.Card) error
	Delete(card *models.Card) error
}

// TransactionRecorder persists one record per transfer attempt.
type TransactionRecorder interface {
	Save(tx *models.PaymentTransaction) error
}

// Service manages a member's cards and orchestrates transfers.
type Service interface {
	ListCards(ctx context.Context, memberNumber int64) ([]models.Card, error)
	GetCard(ctx context.Context, cardNumber string, memberNumber int64) (*models.Card, error)
	CreateCard(ctx context.Context, memberNumber int64, input models.CreateCardInput) (*models.Card, error)
	RemoveCard(ctx context.Context, memberNumber int64, cardNumber string) error
	Transfer(ctx context.Context, memberNumber int64, details models.PaymentDetails) (*models.PaymentProcessorResponse, error)
}
