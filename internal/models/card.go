package models

import "time"

// Card is a payment card owned by exactly one member. Card numbers are
// unique across the whole system, not per member.
type Card struct {
	ID           uint      `gorm:"primarykey" json:"-"`
	CardNumber   string    `gorm:"uniqueIndex;not null" json:"card_number"`
	MemberNumber int64     `gorm:"not null;index" json:"member_number"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// CreateCardInput is the payload for linking a new card to a member.
type CreateCardInput struct {
	CardNumber string `json:"card_number"`
}
