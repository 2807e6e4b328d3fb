package repositories

import (
	"fmt"

	"cardpay/internal/models"

	"gorm.io/gorm"
)

// MemberRepository is the member directory contract.
type MemberRepository interface {
	Exists(memberNumber int64) (bool, error)
	FindByNumber(memberNumber int64) (*models.Member, error)
	Create(member *models.Member) error
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Exists(memberNumber int64) (bool, error) {
	var count int64
	err := r.db.Model(&models.Member{}).
		Where("member_number = ?", memberNumber).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check member existence: %w", err)
	}
	return count > 0, nil
}

func (r *memberRepository) FindByNumber(memberNumber int64) (*models.Member, error) {
	var member models.Member
	if err := r.db.Where("member_number = ?", memberNumber).First(&member).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	return &member, nil
}

func (r *memberRepository) Create(member *models.Member) error {
	return r.db.Create(member).Error
}
