package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateInt(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"single digit month and day are padded", time.Date(2026, 1, 9, 10, 30, 0, 0, time.UTC), 20260109},
		{"double digit month and day", time.Date(2026, 11, 23, 0, 0, 0, 0, time.UTC), 20261123},
		{"first of january", time.Date(2026, 1, 1, 23, 59, 59, 0, time.UTC), 20260101},
		{"end of year", time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), 20251231},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DateInt(tt.date))
		})
	}
}

// Encoded dates must order the same way the calendar does, so BETWEEN
// range queries stay correct.
func TestDateIntOrdering(t *testing.T) {
	day := time.Date(2025, 12, 28, 0, 0, 0, 0, time.UTC)
	prev := DateInt(day)
	for i := 0; i < 10; i++ {
		day = day.AddDate(0, 0, 1)
		cur := DateInt(day)
		assert.Greater(t, cur, prev, "date %s must encode above its predecessor", day.Format("2006-01-02"))
		prev = cur
	}
}
