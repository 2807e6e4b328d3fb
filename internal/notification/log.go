package notification

import (
	"context"
	"log"
	"time"

	"github.com/shopspring/decimal"
)

// LogSender is a minimal Sender that only logs. It is the fallback when
// no message broker is configured.
type LogSender struct{}

func NewLogSender() *LogSender { return &LogSender{} }

func (s *LogSender) Notify(_ context.Context, destinationCardNumber string, amount decimal.Decimal, at time.Time) error {
	log.Printf("notify card %s of incoming transfer %s at %s", destinationCardNumber, amount, at.Format(time.RFC3339))
	return nil
}
