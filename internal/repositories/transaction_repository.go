package repositories

import (
	"fmt"

	"cardpay/internal/models"

	"gorm.io/gorm"
)

// TransactionRepository persists and queries payment transactions.
type TransactionRepository interface {
	Save(tx *models.PaymentTransaction) error
	GetByCardAndDateRange(cardID uint, from, to int) ([]models.PaymentTransaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Save(tx *models.PaymentTransaction) error {
	if err := r.db.Create(tx).Error; err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

// GetByCardAndDateRange returns the card's transactions whose date falls
// in the inclusive range [from, to], oldest first.
func (r *transactionRepository) GetByCardAndDateRange(cardID uint, from, to int) ([]models.PaymentTransaction, error) {
	var transactions []models.PaymentTransaction
	err := r.db.Where("card_id = ? AND transaction_date BETWEEN ? AND ?", cardID, from, to).
		Order("id").
		Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}
