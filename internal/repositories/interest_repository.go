package repositories

import (
	"amora_backend/internal/models"

	"gorm.io/gorm"
)

// InterestRepository mediates access to the interests reference table.
type InterestRepository interface {
	ListActive(db *gorm.DB) ([]models.Interest, error)
}

type interestRepository struct{}

func NewInterestRepository() InterestRepository {
	return &interestRepository{}
}

func (r *interestRepository) ListActive(db *gorm.DB) ([]models.Interest, error) {
	var interests []models.Interest
	err := db.Where("is_active = ?", true).Order("category ASC, name ASC").Find(&interests).Error
	if err != nil {
		return nil, err
	}
	return interests, nil
}
