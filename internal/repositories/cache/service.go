// Package cache provides a Redis-backed cache for card lookups.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"cardpay/internal/models"

	"github.com/redis/go-redis/v9"
)

// CacheService caches cards by card number with a fixed TTL.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, ttl time.Duration) *CacheService {
	return &CacheService{client: client, ttl: ttl}
}

func cardKey(cardNumber string) string {
	return "card:" + cardNumber
}

// GetCard returns the cached card or an error on a miss.
func (s *CacheService) GetCard(ctx context.Context, cardNumber string) (*models.Card, error) {
	data, err := s.client.Get(ctx, cardKey(cardNumber)).Bytes()
	if err != nil {
		return nil, err
	}
	var card models.Card
	if err := json.Unmarshal(data, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

func (s *CacheService) SetCard(ctx context.Context, card *models.Card) error {
	data, err := json.Marshal(card)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, cardKey(card.CardNumber), data, s.ttl).Err()
}

func (s *CacheService) InvalidateCard(ctx context.Context, cardNumber string) error {
	return s.client.Del(ctx, cardKey(cardNumber)).Err()
}

// FlushAll clears the whole cache. Used on startup so stale cards never
// survive a schema change.
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

func (s *CacheService) Close() error {
	return s.client.Close()
}
