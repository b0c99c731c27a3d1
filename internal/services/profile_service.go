package services

import (
	"encoding/json"

	"amora_backend/internal/models"
	"amora_backend/internal/repositories"
	"amora_backend/internal/services/dto"
	"amora_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ProfileService handles the caller's own profile lifecycle.
type ProfileService interface {
	// GetMyProfile returns the caller's profile or NotFound.
	GetMyProfile(db *gorm.DB, userID string) (*models.Profile, error)

	// UpsertMyProfile creates the profile on first call and applies a
	// partial update afterwards (POST /api/profile semantics).
	UpsertMyProfile(db *gorm.DB, userID string, req *dto.ProfileUpsertRequest) (*models.Profile, error)

	// ReplaceMyProfile updates an existing profile and fails with
	// NotFound when none exists yet (PUT /api/profile semantics).
	ReplaceMyProfile(db *gorm.DB, userID string, req *dto.ProfileUpsertRequest) (*models.Profile, error)

	// RequireProfile resolves the caller's profile for flows that are
	// only legal once profile creation is complete.
	RequireProfile(db *gorm.DB, userID string) (*models.Profile, error)
}

type profileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileService {
	return &profileService{profileRepo: profileRepo}
}

func (s *profileService) GetMyProfile(db *gorm.DB, userID string) (*models.Profile, error) {
	return s.RequireProfile(db, userID)
}

func (s *profileService) RequireProfile(db *gorm.DB, userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, mapProfileError(err)
	}
	return profile, nil
}

func (s *profileService) UpsertMyProfile(db *gorm.DB, userID string, req *dto.ProfileUpsertRequest) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.UpstreamError("profile", err)
		}

		// First write creates the profile in its initial state.
		profile = &models.Profile{
			UserID:             userID,
			VerificationStatus: models.VerificationStatusUnverified,
		}
		applyProfileUpdates(profile, req)
		if err := s.profileRepo.Create(db, profile); err != nil {
			return nil, mapProfileError(err)
		}
		return profile, nil
	}

	applyProfileUpdates(profile, req)
	if err := s.profileRepo.Update(db, profile); err != nil {
		return nil, apperrors.UpstreamError("profile", err)
	}
	return profile, nil
}

func (s *profileService) ReplaceMyProfile(db *gorm.DB, userID string, req *dto.ProfileUpsertRequest) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, mapProfileError(err)
	}

	applyProfileUpdates(profile, req)
	if err := s.profileRepo.Update(db, profile); err != nil {
		return nil, apperrors.UpstreamError("profile", err)
	}
	return profile, nil
}

func applyProfileUpdates(profile *models.Profile, req *dto.ProfileUpsertRequest) {
	if req.DisplayName != nil {
		profile.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.BirthDate != nil {
		profile.BirthDate = req.BirthDate
	}
	if req.Gender != nil {
		profile.Gender = *req.Gender
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.Interests != nil {
		// marshal of []string cannot fail
		raw, _ := json.Marshal(req.Interests)
		profile.Interests = raw
	}
	if req.IsProfileComplete != nil {
		profile.IsProfileComplete = *req.IsProfileComplete
	}
	if req.IsVisible != nil {
		profile.IsVisible = *req.IsVisible
	}
}

func mapProfileError(err error) error {
	switch {
	case apperrors.Is(err, repositories.ErrProfileNotFound):
		return apperrors.NewNotFoundError("profile", "Profile not found")
	case apperrors.Is(err, repositories.ErrProfileAlreadyExists):
		return apperrors.NewConflictError("profile", "Profile already exists")
	default:
		return apperrors.UpstreamError("profile", err)
	}
}
