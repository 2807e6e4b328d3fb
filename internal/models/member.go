package models

import "time"

// Member is a cardholder account identified by its member number.
type Member struct {
	ID           uint      `gorm:"primarykey" json:"-"`
	MemberNumber int64     `gorm:"uniqueIndex;not null" json:"member_number"`
	Name         string    `gorm:"not null" json:"name"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
