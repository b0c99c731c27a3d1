package services

import (
	"errors"

	"amora_backend/internal/models"
	"amora_backend/internal/repositories"
	"amora_backend/internal/services/dto"
	"amora_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// SwipeService records like/pass decisions and reports mutual matches.
type SwipeService interface {
	Swipe(db *gorm.DB, userID string, req *dto.SwipeRequest) (*dto.SwipeResponse, error)
}

type swipeService struct {
	profileRepo repositories.ProfileRepository
	swipeRepo   repositories.SwipeRepository
}

func NewSwipeService(profileRepo repositories.ProfileRepository, swipeRepo repositories.SwipeRepository) SwipeService {
	return &swipeService{profileRepo: profileRepo, swipeRepo: swipeRepo}
}

func (s *swipeService) Swipe(db *gorm.DB, userID string, req *dto.SwipeRequest) (*dto.SwipeResponse, error) {
	swiper, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, mapProfileError(err)
	}

	if req.SwipedID == swiper.ID {
		return nil, apperrors.NewBadRequestError("swipe", "You cannot swipe on your own profile")
	}

	if _, err := s.profileRepo.FindByID(db, req.SwipedID); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("swipe", "Swiped profile not found")
		}
		return nil, apperrors.UpstreamError("swipe", err)
	}

	result, err := s.swipeRepo.RecordSwipe(db, swiper.ID, req.SwipedID, models.SwipeAction(req.Action))
	if err != nil {
		return nil, apperrors.UpstreamError("swipe", err)
	}

	resp := &dto.SwipeResponse{
		Swipe:   result.Swipe,
		IsMatch: result.Matched,
	}
	if result.Matched {
		resp.Match = result.Match
	}
	return resp, nil
}
