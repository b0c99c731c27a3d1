package services

import (
	"amora_backend/internal/models"
	"amora_backend/internal/repositories"
	"amora_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// InterestService serves the public interest reference list.
type InterestService interface {
	ListActive(db *gorm.DB) ([]models.Interest, error)
}

type interestService struct {
	interestRepo repositories.InterestRepository
}

func NewInterestService(interestRepo repositories.InterestRepository) InterestService {
	return &interestService{interestRepo: interestRepo}
}

func (s *interestService) ListActive(db *gorm.DB) ([]models.Interest, error) {
	interests, err := s.interestRepo.ListActive(db)
	if err != nil {
		return nil, apperrors.UpstreamError("interest", err)
	}
	if interests == nil {
		interests = []models.Interest{}
	}
	return interests, nil
}
