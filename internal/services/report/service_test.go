package report

import (
	"context"
	"testing"
	"time"

	"cardpay/internal/models"
	"cardpay/internal/services/card"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockCardService struct {
	mock.Mock
}

func (m *MockCardService) ListCards(ctx context.Context, memberNumber int64) ([]models.Card, error) {
	args := m.Called(ctx, memberNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Card), args.Error(1)
}

func (m *MockCardService) GetCard(ctx context.Context, cardNumber string, memberNumber int64) (*models.Card, error) {
	args := m.Called(ctx, cardNumber, memberNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

func (m *MockCardService) CreateCard(ctx context.Context, memberNumber int64, input models.CreateCardInput) (*models.Card, error) {
	args := m.Called(ctx, memberNumber, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Card), args.Error(1)
}

func (m *MockCardService) RemoveCard(ctx context.Context, memberNumber int64, cardNumber string) error {
	args := m.Called(ctx, memberNumber, cardNumber)
	return args.Error(0)
}

func (m *MockCardService) Transfer(ctx context.Context, memberNumber int64, details models.PaymentDetails) (*models.PaymentProcessorResponse, error) {
	args := m.Called(ctx, memberNumber, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PaymentProcessorResponse), args.Error(1)
}

type MockTransactionReader struct {
	mock.Mock
}

func (m *MockTransactionReader) GetByCardAndDateRange(cardID uint, from, to int) ([]models.PaymentTransaction, error) {
	args := m.Called(cardID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PaymentTransaction), args.Error(1)
}

func stringPtr(s string) *string { return &s }

func TestService_GetReport_GroupsByResult(t *testing.T) {
	cards := new(MockCardService)
	reader := new(MockTransactionReader)
	ownedCard := &models.Card{ID: 7, CardNumber: "4111", MemberNumber: 1001}

	transactions := []models.PaymentTransaction{
		{ID: 1, PaymentID: stringPtr("9001"), Result: models.StatusSuccess, TransactionDate: 20260110, CardID: 7},
		{ID: 2, PaymentID: stringPtr("9002"), Result: models.StatusFailed, TransactionDate: 20260111, CardID: 7},
		{ID: 3, PaymentID: stringPtr("9003"), Result: models.StatusSuccess, TransactionDate: 20260112, CardID: 7},
		{ID: 4, Result: models.StatusError, TransactionDate: 20260112, CardID: 7},
	}

	cards.On("GetCard", mock.Anything, "4111", int64(1001)).Return(ownedCard, nil)
	reader.On("GetByCardAndDateRange", uint(7), 20260101, 20260131).Return(transactions, nil)

	s := NewService(cards, reader, nil)
	grouped, err := s.GetReport(context.Background(), 1001, "4111", 20260101, 20260131)

	assert.NoError(t, err)
	assert.Len(t, grouped, 3)
	assert.Len(t, grouped[models.StatusSuccess], 2)
	assert.Len(t, grouped[models.StatusFailed], 1)
	assert.Len(t, grouped[models.StatusError], 1)

	// The union of all partitions is exactly the fetched set.
	total := 0
	seen := map[uint]bool{}
	for _, txs := range grouped {
		for _, tx := range txs {
			assert.False(t, seen[tx.ID], "transaction %d appears twice", tx.ID)
			seen[tx.ID] = true
			total++
		}
	}
	assert.Equal(t, len(transactions), total)

	// Per-status order follows the fetch order.
	assert.Equal(t, uint(1), grouped[models.StatusSuccess][0].ID)
	assert.Equal(t, uint(3), grouped[models.StatusSuccess][1].ID)

	cards.AssertExpectations(t)
	reader.AssertExpectations(t)
}

func TestService_GetReport_Errors(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(*MockCardService, *MockTransactionReader)
		wantErr   error
	}{
		{
			name: "no transactions in range",
			setupMock: func(cards *MockCardService, reader *MockTransactionReader) {
				cards.On("GetCard", mock.Anything, "4111", int64(1001)).
					Return(&models.Card{ID: 7}, nil)
				reader.On("GetByCardAndDateRange", uint(7), 20260101, 20260131).
					Return([]models.PaymentTransaction{}, nil)
			},
			wantErr: ErrNoTransactions,
		},
		{
			name: "unknown member",
			setupMock: func(cards *MockCardService, reader *MockTransactionReader) {
				cards.On("GetCard", mock.Anything, "4111", int64(1001)).
					Return(nil, card.ErrMemberNotFound)
			},
			wantErr: card.ErrMemberNotFound,
		},
		{
			name: "card not owned by member",
			setupMock: func(cards *MockCardService, reader *MockTransactionReader) {
				cards.On("GetCard", mock.Anything, "4111", int64(1001)).
					Return(nil, card.ErrCardNotFound)
			},
			wantErr: card.ErrCardNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := new(MockCardService)
			reader := new(MockTransactionReader)
			tt.setupMock(cards, reader)

			s := NewService(cards, reader, nil)
			grouped, err := s.GetReport(context.Background(), 1001, "4111", 20260101, 20260131)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, grouped)
			cards.AssertExpectations(t)
			reader.AssertExpectations(t)
		})
	}
}

// A transfer recorded today shows up in a report over today's date.
func TestService_GetReport_TodayScenario(t *testing.T) {
	cards := new(MockCardService)
	reader := new(MockTransactionReader)
	today := models.DateInt(time.Now())
	ownedCard := &models.Card{ID: 9, CardNumber: "4111-1111-1111-1111", MemberNumber: 1001}

	recorded := []models.PaymentTransaction{
		{
			ID:                    1,
			PaymentID:             stringPtr("9001"),
			Result:                models.StatusSuccess,
			TransactionDate:       today,
			AmountTransaction:     decimal.RequireFromString("50.00"),
			DestinationCardNumber: "4222-2222-2222-2222",
			CardID:                9,
		},
	}

	cards.On("GetCard", mock.Anything, "4111-1111-1111-1111", int64(1001)).Return(ownedCard, nil)
	reader.On("GetByCardAndDateRange", uint(9), today, today).Return(recorded, nil)

	s := NewService(cards, reader, nil)
	grouped, err := s.GetReport(context.Background(), 1001, "4111-1111-1111-1111", today, today)

	assert.NoError(t, err)
	assert.Len(t, grouped, 1)
	success := grouped[models.StatusSuccess]
	assert.Len(t, success, 1)
	assert.Equal(t, "9001", *success[0].PaymentID)
	assert.True(t, success[0].AmountTransaction.Equal(decimal.RequireFromString("50.00")))
}
