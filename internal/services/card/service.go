package card

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"cardpay/internal/gateway"
	"cardpay/internal/metrics"
	"cardpay/internal/models"
	"cardpay/internal/notification"
	"cardpay/internal/repositories"

	"github.com/google/uuid"
)

type service struct {
	members      MemberDirectory
	cards        CardStore
	transactions TransactionRecorder
	gateway      gateway.Gateway
	notifier     notification.Sender
	metrics      metrics.Collector
}

// NewService creates the card service. The notifier and metrics
// collector may be nil; a nil notifier disables notifications.
func NewService(
	members MemberDirectory,
	cards CardStore,
	transactions TransactionRecorder,
	gw gateway.Gateway,
	notifier notification.Sender,
	collector metrics.Collector,
) Service {
	if collector == nil {
		collector = metrics.NoopCollector{}
	}
	return &service{
		members:      members,
		cards:        cards,
		transactions: transactions,
		gateway:      gw,
		notifier:     notifier,
		metrics:      collector,
	}
}

// ListCards returns the member's cards ordered by creation.
func (s *service) ListCards(ctx context.Context, memberNumber int64) ([]models.Card, error) {
	if err := s.checkMemberExists(memberNumber); err != nil {
		return nil, err
	}
	cards, err := s.cards.GetByMember(memberNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	if len(cards) == 0 {
		return nil, ErrNoCards
	}
	return cards, nil
}

// GetCard resolves a card by number, scoped to its owning member.
func (s *service) GetCard(ctx context.Context, cardNumber string, memberNumber int64) (*models.Card, error) {
	if err := s.checkMemberExists(memberNumber); err != nil {
		return nil, err
	}
	card, err := s.cards.GetByNumberAndMember(cardNumber, memberNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return card, nil
}

// CreateCard links a new card to the member. Card numbers are unique
// across all members.
func (s *service) CreateCard(ctx context.Context, memberNumber int64, input models.CreateCardInput) (*models.Card, error) {
	if err := s.checkMemberExists(memberNumber); err != nil {
		return nil, err
	}
	card := &models.Card{
		CardNumber:   input.CardNumber,
		MemberNumber: memberNumber,
	}
	if err := s.cards.Create(card); err != nil {
		if errors.Is(err, repositories.ErrDuplicateCard) {
			return nil, ErrCardExists
		}
		return nil, fmt.Errorf("failed to create card: %w", err)
	}
	return card, nil
}

// RemoveCard deletes a card through its owner. A card that exists but
// belongs to another member is reported as not found.
func (s *service) RemoveCard(ctx context.Context, memberNumber int64, cardNumber string) error {
	card, err := s.GetCard(ctx, cardNumber, memberNumber)
	if err != nil {
		return err
	}
	if err := s.cards.Delete(card); err != nil {
		if errors.Is(err, repositories.ErrCardNotFound) {
			return ErrCardNotFound
		}
		return fmt.Errorf("failed to remove card: %w", err)
	}
	return nil
}

// Transfer moves funds from one of the member's cards to a destination
// card number through the payment processor, and records the attempt.
//
// The processor call is an external effect that cannot be rolled back;
// the transaction record is written after it, for every attempt:
//   - a returned response (SUCCESS or FAILED) is recorded as-is,
//   - a faulted call is recorded with result ERROR and no payment id,
//     then the fault propagates wrapped in ErrGatewayFault.
//
// The destination holder is notified only on SUCCESS; notification
// failures are logged and swallowed.
func (s *service) Transfer(ctx context.Context, memberNumber int64, details models.PaymentDetails) (*models.PaymentProcessorResponse, error) {
	start := time.Now()

	sourceCard, err := s.GetCard(ctx, details.Source, memberNumber)
	if err != nil {
		s.metrics.RecordError("transfer", "source_card")
		return nil, err
	}

	response, gwErr := s.gateway.Transfer(ctx, details)
	if gwErr != nil {
		record := buildRecord(sourceCard, details, &models.PaymentProcessorResponse{
			Status:      models.StatusError,
			Description: gwErr.Error(),
		})
		if err := s.transactions.Save(record); err != nil {
			s.metrics.RecordError("transfer", "record")
			return nil, fmt.Errorf("failed to record faulted transfer: %w", err)
		}
		s.metrics.RecordOperationResult("transfer", string(models.StatusError))
		return nil, fmt.Errorf("%w: %v", ErrGatewayFault, gwErr)
	}

	if response.Status == models.StatusSuccess && s.notifier != nil {
		if err := s.notifier.Notify(ctx, details.Destination, details.Amount, time.Now()); err != nil {
			log.Printf("transfer notification failed: %v", err)
		}
	}

	if err := s.transactions.Save(buildRecord(sourceCard, details, response)); err != nil {
		s.metrics.RecordError("transfer", "record")
		return nil, fmt.Errorf("failed to record transfer: %w", err)
	}

	s.metrics.RecordOperationResult("transfer", string(response.Status))
	s.metrics.RecordOperationDuration("transfer", time.Since(start))
	return response, nil
}

func (s *service) checkMemberExists(memberNumber int64) error {
	exists, err := s.members.Exists(memberNumber)
	if err != nil {
		return fmt.Errorf("failed to check member: %w", err)
	}
	if !exists {
		return ErrMemberNotFound
	}
	return nil
}

// buildRecord maps one transfer attempt to its transaction row. The
// ownership link is the source card, never the destination.
func buildRecord(sourceCard *models.Card, details models.PaymentDetails, response *models.PaymentProcessorResponse) *models.PaymentTransaction {
	var paymentID *string
	if response.PaymentID != "" {
		id := response.PaymentID
		paymentID = &id
	}
	return &models.PaymentTransaction{
		PaymentID:             paymentID,
		Reference:             uuid.NewString(),
		DestinationCardNumber: details.Destination,
		TransactionDate:       models.DateInt(time.Now()),
		AmountTransaction:     details.Amount,
		Description:           response.Description,
		Result:                response.Status,
		CardID:                sourceCard.ID,
	}
}
