package repositories

import (
	"amora_backend/internal/models"

	"gorm.io/gorm"
)

// VerificationRepository mediates access to the verifications table.
type VerificationRepository interface {
	Create(db *gorm.DB, verification *models.Verification) error
	ListByUser(db *gorm.DB, userID string) ([]models.Verification, error)
}

type verificationRepository struct{}

func NewVerificationRepository() VerificationRepository {
	return &verificationRepository{}
}

func (r *verificationRepository) Create(db *gorm.DB, verification *models.Verification) error {
	return db.Create(verification).Error
}

// ListByUser returns the user's submissions, newest first.
func (r *verificationRepository) ListByUser(db *gorm.DB, userID string) ([]models.Verification, error) {
	var verifications []models.Verification
	err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&verifications).Error
	if err != nil {
		return nil, err
	}
	return verifications, nil
}
