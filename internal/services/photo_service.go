package services

import (
	"context"
	"errors"
	"mime/multipart"

	"amora_backend/internal/logger"
	"amora_backend/internal/models"
	"amora_backend/internal/repositories"
	"amora_backend/internal/services/dto"
	"amora_backend/internal/storage"
	"amora_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// PhotoService owns the profile-photos bucket and its metadata rows.
type PhotoService interface {
	Upload(ctx context.Context, db *gorm.DB, userID string, header *multipart.FileHeader, opts dto.PhotoUploadOptions) (*dto.PhotoUploadResponse, error)
	ListMine(db *gorm.DB, userID string) ([]models.ProfilePhoto, error)
	Delete(ctx context.Context, db *gorm.DB, userID, photoID string) error
}

type photoService struct {
	profileRepo repositories.ProfileRepository
	photoRepo   repositories.PhotoRepository
	store       storage.Storage
	policy      UploadPolicy
}

func NewPhotoService(profileRepo repositories.ProfileRepository, photoRepo repositories.PhotoRepository, store storage.Storage, policy UploadPolicy) PhotoService {
	return &photoService{
		profileRepo: profileRepo,
		photoRepo:   photoRepo,
		store:       store,
		policy:      policy,
	}
}

func (s *photoService) Upload(ctx context.Context, db *gorm.DB, userID string, header *multipart.FileHeader, opts dto.PhotoUploadOptions) (*dto.PhotoUploadResponse, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, mapProfileError(err)
	}

	contentType, err := validateUpload("photo", header, s.policy)
	if err != nil {
		return nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, apperrors.NewBadRequestError("photo", "Unable to read uploaded file")
	}
	defer file.Close()

	key := objectKey(userID, header.Filename)
	if err := s.store.Save(ctx, key, file, contentType); err != nil {
		return nil, apperrors.UpstreamError("photo", err)
	}

	url, err := s.store.GetURL(ctx, key)
	if err != nil {
		s.compensate(ctx, key)
		return nil, apperrors.UpstreamError("photo", err)
	}

	photo := &models.ProfilePhoto{
		ProfileID:   profile.ID,
		URL:         url,
		StoragePath: key,
		Position:    opts.Position,
		IsProfile:   opts.IsProfile,
	}
	if err := s.photoRepo.Create(db, photo); err != nil {
		// The object is already in the bucket; remove it so a failed
		// request leaves nothing behind.
		s.compensate(ctx, key)
		return nil, apperrors.UpstreamError("photo", err)
	}

	return &dto.PhotoUploadResponse{
		Success: true,
		Photo:   photo,
		Message: "Profile photo uploaded successfully",
	}, nil
}

func (s *photoService) compensate(ctx context.Context, key string) {
	if err := s.store.Delete(ctx, key); err != nil {
		logger.CtxWarn(ctx, "failed to clean up uploaded photo", "key", key, "error", err)
	}
}

func (s *photoService) ListMine(db *gorm.DB, userID string) ([]models.ProfilePhoto, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, mapProfileError(err)
	}

	photos, err := s.photoRepo.ListByProfile(db, profile.ID)
	if err != nil {
		return nil, apperrors.UpstreamError("photo", err)
	}
	if photos == nil {
		photos = []models.ProfilePhoto{}
	}
	return photos, nil
}

func (s *photoService) Delete(ctx context.Context, db *gorm.DB, userID, photoID string) error {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return mapProfileError(err)
	}

	photo, err := s.photoRepo.FindByID(db, photoID)
	if err != nil {
		if errors.Is(err, repositories.ErrPhotoNotFound) {
			return apperrors.NewNotFoundError("photo", "Photo not found")
		}
		return apperrors.UpstreamError("photo", err)
	}

	if photo.ProfileID != profile.ID {
		return apperrors.NewForbiddenError("photo", "You do not own this photo")
	}

	if err := s.store.Delete(ctx, photo.StoragePath); err != nil {
		return apperrors.UpstreamError("photo", err)
	}
	if err := s.photoRepo.Delete(db, photo.ID); err != nil {
		// Object already gone; an orphaned row here is recoverable by a
		// retry of the delete.
		return apperrors.UpstreamError("photo", err)
	}
	return nil
}
