package services

import (
	"errors"

	"amora_backend/internal/models"
	"amora_backend/internal/repositories"
	"amora_backend/internal/services/dto"
	"amora_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ModerationService covers blocking and reporting other profiles.
type ModerationService interface {
	Block(db *gorm.DB, userID string, req *dto.BlockRequest) (*models.Block, error)
	Unblock(db *gorm.DB, userID, blockedID string) error
	Report(db *gorm.DB, userID string, req *dto.ReportRequest) (*models.Report, error)
}

type moderationService struct {
	profileRepo    repositories.ProfileRepository
	moderationRepo repositories.ModerationRepository
}

func NewModerationService(profileRepo repositories.ProfileRepository, moderationRepo repositories.ModerationRepository) ModerationService {
	return &moderationService{profileRepo: profileRepo, moderationRepo: moderationRepo}
}

func (s *moderationService) Block(db *gorm.DB, userID string, req *dto.BlockRequest) (*models.Block, error) {
	blocker, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, mapProfileError(err)
	}

	if req.BlockedID == blocker.ID {
		return nil, apperrors.NewBadRequestError("moderation", "You cannot block your own profile")
	}

	if _, err := s.profileRepo.FindByID(db, req.BlockedID); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("moderation", "Blocked profile not found")
		}
		return nil, apperrors.UpstreamError("moderation", err)
	}

	block := &models.Block{
		BlockerID: blocker.ID,
		BlockedID: req.BlockedID,
	}
	if err := s.moderationRepo.CreateBlock(db, block); err != nil {
		if errors.Is(err, repositories.ErrBlockAlreadyExists) {
			return nil, apperrors.NewConflictError("moderation", "Profile is already blocked")
		}
		return nil, apperrors.UpstreamError("moderation", err)
	}
	return block, nil
}

func (s *moderationService) Unblock(db *gorm.DB, userID, blockedID string) error {
	blocker, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return mapProfileError(err)
	}

	if err := s.moderationRepo.DeleteBlock(db, blocker.ID, blockedID); err != nil {
		return apperrors.UpstreamError("moderation", err)
	}
	return nil
}

func (s *moderationService) Report(db *gorm.DB, userID string, req *dto.ReportRequest) (*models.Report, error) {
	reporter, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, mapProfileError(err)
	}

	if req.ReportedID == reporter.ID {
		return nil, apperrors.NewBadRequestError("moderation", "You cannot report your own profile")
	}

	if _, err := s.profileRepo.FindByID(db, req.ReportedID); err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.NewNotFoundError("moderation", "Reported profile not found")
		}
		return nil, apperrors.UpstreamError("moderation", err)
	}

	report := &models.Report{
		ReporterID:  reporter.ID,
		ReportedID:  req.ReportedID,
		Reason:      req.Reason,
		Description: req.Description,
		Status:      models.ReportStatusPending,
	}
	if err := s.moderationRepo.CreateReport(db, report); err != nil {
		return nil, apperrors.UpstreamError("moderation", err)
	}
	return report, nil
}
