// Package report aggregates a card's payment transactions by outcome.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cardpay/internal/metrics"
	"cardpay/internal/models"
	"cardpay/internal/services/card"
)

// ErrNoTransactions means the card has no transactions in the range.
var ErrNoTransactions = errors.New("no transactions in date range")

// TransactionReader fetches a card's transactions by date range.
type TransactionReader interface {
	GetByCardAndDateRange(cardID uint, from, to int) ([]models.PaymentTransaction, error)
}

// Service builds per-card transaction reports.
type Service interface {
	GetReport(ctx context.Context, memberNumber int64, cardNumber string, from, to int) (map[models.PaymentResponseStatus][]models.PaymentTransaction, error)
}

type service struct {
	cards        card.Service
	transactions TransactionReader
	metrics      metrics.Collector
}

func NewService(cards card.Service, transactions TransactionReader, collector metrics.Collector) Service {
	if collector == nil {
		collector = metrics.NoopCollector{}
	}
	return &service{cards: cards, transactions: transactions, metrics: collector}
}

// GetReport groups the card's transactions in the inclusive date range
// [from, to] by result status. Dates use the YYYYMMDD integer encoding.
// Within a status, transactions keep the repository's order; no order
// is defined across statuses.
func (s *service) GetReport(ctx context.Context, memberNumber int64, cardNumber string, from, to int) (map[models.PaymentResponseStatus][]models.PaymentTransaction, error) {
	start := time.Now()

	c, err := s.cards.GetCard(ctx, cardNumber, memberNumber)
	if err != nil {
		s.metrics.RecordError("report", "card_lookup")
		return nil, err
	}

	transactions, err := s.transactions.GetByCardAndDateRange(c.ID, from, to)
	if err != nil {
		s.metrics.RecordError("report", "query")
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	if len(transactions) == 0 {
		return nil, ErrNoTransactions
	}

	grouped := make(map[models.PaymentResponseStatus][]models.PaymentTransaction)
	for _, tx := range transactions {
		grouped[tx.Result] = append(grouped[tx.Result], tx)
	}

	s.metrics.RecordOperationDuration("report", time.Since(start))
	s.metrics.RecordOperationResult("report", "ok")
	return grouped, nil
}
