package services

import (
	"amora_backend/internal/models"
	"amora_backend/internal/repositories"
	"amora_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const (
	defaultDiscoveryLimit = 20
	maxDiscoveryLimit     = 50
)

// DiscoveryService surfaces swipeable candidate profiles.
type DiscoveryService interface {
	// Discover returns up to limit candidates for the caller, excluding
	// already-swiped and blocked profiles. Fails with NotFound when the
	// caller has no profile yet: discovery requires a completed profile
	// rather than returning an empty set.
	Discover(db *gorm.DB, userID string, limit int) ([]models.Profile, error)
}

type discoveryService struct {
	profileRepo repositories.ProfileRepository
}

func NewDiscoveryService(profileRepo repositories.ProfileRepository) DiscoveryService {
	return &discoveryService{profileRepo: profileRepo}
}

func (s *discoveryService) Discover(db *gorm.DB, userID string, limit int) ([]models.Profile, error) {
	if limit <= 0 {
		limit = defaultDiscoveryLimit
	}
	if limit > maxDiscoveryLimit {
		limit = maxDiscoveryLimit
	}

	requester, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, mapProfileError(err)
	}

	candidates, err := s.profileRepo.Discover(db, requester, limit)
	if err != nil {
		return nil, apperrors.UpstreamError("discovery", err)
	}

	// Empty slice, not nil, so the response serializes as [].
	if candidates == nil {
		candidates = []models.Profile{}
	}
	return candidates, nil
}
