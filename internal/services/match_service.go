package services

import (
	"errors"

	"amora_backend/internal/models"
	"amora_backend/internal/repositories"
	"amora_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// MatchService lists a profile's matches and authorizes match access.
type MatchService interface {
	ListMyMatches(db *gorm.DB, userID string) ([]models.Match, error)

	// RequireParticipant loads the match and verifies the caller's
	// profile is one of its two sides. Returns the match and the
	// caller's profile ID on success.
	RequireParticipant(db *gorm.DB, userID, matchID string) (*models.Match, string, error)
}

type matchService struct {
	profileRepo repositories.ProfileRepository
	matchRepo   repositories.MatchRepository
}

func NewMatchService(profileRepo repositories.ProfileRepository, matchRepo repositories.MatchRepository) MatchService {
	return &matchService{profileRepo: profileRepo, matchRepo: matchRepo}
}

func (s *matchService) ListMyMatches(db *gorm.DB, userID string) ([]models.Match, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, mapProfileError(err)
	}

	matches, err := s.matchRepo.FindForProfile(db, profile.ID)
	if err != nil {
		return nil, apperrors.UpstreamError("match", err)
	}
	if matches == nil {
		matches = []models.Match{}
	}
	return matches, nil
}

func (s *matchService) RequireParticipant(db *gorm.DB, userID, matchID string) (*models.Match, string, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, "", mapProfileError(err)
	}

	match, err := s.matchRepo.FindByID(db, matchID)
	if err != nil {
		if errors.Is(err, repositories.ErrMatchNotFound) {
			return nil, "", apperrors.NewNotFoundError("match", "Match not found")
		}
		return nil, "", apperrors.UpstreamError("match", err)
	}

	if !match.Involves(profile.ID) {
		return nil, "", apperrors.NewForbiddenError("match", "You are not a participant of this match")
	}
	return match, profile.ID, nil
}
