package repositories

import (
	"context"
	"fmt"

	"cardpay/internal/models"
	"cardpay/internal/repositories/cache"

	"gorm.io/gorm"
)

// CardRepository is the card store contract.
type CardRepository interface {
	GetByMember(memberNumber int64) ([]models.Card, error)
	GetByNumberAndMember(cardNumber string, memberNumber int64) (*models.Card, error)
	ExistsByNumber(cardNumber string) (bool, error)
	Create(card *models.Card) error
	Delete(card *models.Card) error
}

type cardRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

// NewCardRepository creates a card repository. The cache is optional;
// pass nil to disable card lookup caching.
func NewCardRepository(db *gorm.DB, cacheService *cache.CacheService) CardRepository {
	return &cardRepository{db: db, cache: cacheService}
}

func (r *cardRepository) GetByMember(memberNumber int64) ([]models.Card, error) {
	var cards []models.Card
	err := r.db.Where("member_number = ?", memberNumber).
		Order("id").
		Find(&cards).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get member cards: %w", err)
	}
	return cards, nil
}

func (r *cardRepository) GetByNumberAndMember(cardNumber string, memberNumber int64) (*models.Card, error) {
	if r.cache != nil {
		if card, err := r.cache.GetCard(context.Background(), cardNumber); err == nil {
			if card.MemberNumber != memberNumber {
				return nil, ErrCardNotFound
			}
			return card, nil
		}
	}

	var card models.Card
	err := r.db.Where("card_number = ? AND member_number = ?", cardNumber, memberNumber).
		First(&card).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	if r.cache != nil {
		if err := r.cache.SetCard(context.Background(), &card); err != nil {
			// Cache failures never fail the lookup.
			fmt.Printf("failed to cache card: %v\n", err)
		}
	}
	return &card, nil
}

func (r *cardRepository) ExistsByNumber(cardNumber string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Card{}).
		Where("card_number = ?", cardNumber).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check card existence: %w", err)
	}
	return count > 0, nil
}

// Create inserts a card after checking its number is not already taken
// anywhere in the system. Check and insert run in one transaction; the
// unique index on card_number backs the check under concurrency.
func (r *cardRepository) Create(card *models.Card) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Card{}).
			Where("card_number = ?", card.CardNumber).
			Count(&count).Error
		if err != nil {
			return fmt.Errorf("failed to check card existence: %w", err)
		}
		if count > 0 {
			return ErrDuplicateCard
		}
		return tx.Create(card).Error
	})
}

func (r *cardRepository) Delete(card *models.Card) error {
	result := r.db.Delete(&models.Card{}, card.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	if r.cache != nil {
		if err := r.cache.InvalidateCard(context.Background(), card.CardNumber); err != nil {
			fmt.Printf("failed to invalidate card cache: %v\n", err)
		}
	}
	return nil
}
