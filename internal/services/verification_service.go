package services

import (
	"context"
	"mime/multipart"
	"time"

	"amora_backend/internal/logger"
	"amora_backend/internal/models"
	"amora_backend/internal/repositories"
	"amora_backend/internal/services/dto"
	"amora_backend/internal/storage"
	"amora_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// VerificationService owns the private verification-documents bucket.
// Objects there are never exposed by public URL; reads happen through
// short-lived signed links.
type VerificationService interface {
	Upload(ctx context.Context, db *gorm.DB, userID string, header *multipart.FileHeader, verificationType string) (*dto.VerificationUploadResponse, error)
	ListMine(ctx context.Context, db *gorm.DB, userID string) ([]models.Verification, error)
}

type verificationService struct {
	verificationRepo repositories.VerificationRepository
	store            storage.Storage
	policy           UploadPolicy
	signedURLTTL     time.Duration
}

func NewVerificationService(verificationRepo repositories.VerificationRepository, store storage.Storage, policy UploadPolicy, signedURLTTL time.Duration) VerificationService {
	return &verificationService{
		verificationRepo: verificationRepo,
		store:            store,
		policy:           policy,
		signedURLTTL:     signedURLTTL,
	}
}

func (s *verificationService) Upload(ctx context.Context, db *gorm.DB, userID string, header *multipart.FileHeader, verificationType string) (*dto.VerificationUploadResponse, error) {
	if verificationType == "" {
		return nil, apperrors.NewBadRequestError("verification", "verification_type is required")
	}

	contentType, err := validateUpload("verification", header, s.policy)
	if err != nil {
		return nil, err
	}

	file, err := header.Open()
	if err != nil {
		return nil, apperrors.NewBadRequestError("verification", "Unable to read uploaded file")
	}
	defer file.Close()

	key := objectKey(userID, header.Filename)
	if err := s.store.Save(ctx, key, file, contentType); err != nil {
		return nil, apperrors.UpstreamError("verification", err)
	}

	signedURL, err := s.store.GetSignedURL(ctx, key, s.signedURLTTL)
	if err != nil {
		s.compensate(ctx, key)
		return nil, apperrors.UpstreamError("verification", err)
	}

	verification := &models.Verification{
		UserID:      userID,
		Type:        verificationType,
		FileURL:     signedURL,
		StoragePath: key,
		Status:      models.VerificationPending,
	}
	if err := s.verificationRepo.Create(db, verification); err != nil {
		s.compensate(ctx, key)
		return nil, apperrors.UpstreamError("verification", err)
	}

	return &dto.VerificationUploadResponse{
		Success:      true,
		Verification: verification,
		Message:      "Verification document uploaded successfully",
	}, nil
}

func (s *verificationService) compensate(ctx context.Context, key string) {
	if err := s.store.Delete(ctx, key); err != nil {
		logger.CtxWarn(ctx, "failed to clean up uploaded verification document", "key", key, "error", err)
	}
}

// ListMine returns the caller's submissions with freshly signed URLs.
// A signing failure degrades to the stored reference so one bad object
// does not hide the whole history.
func (s *verificationService) ListMine(ctx context.Context, db *gorm.DB, userID string) ([]models.Verification, error) {
	verifications, err := s.verificationRepo.ListByUser(db, userID)
	if err != nil {
		return nil, apperrors.UpstreamError("verification", err)
	}

	for i := range verifications {
		signedURL, err := s.store.GetSignedURL(ctx, verifications[i].StoragePath, s.signedURLTTL)
		if err != nil {
			logger.CtxWarn(ctx, "failed to refresh signed URL",
				"key", verifications[i].StoragePath, "error", err)
			continue
		}
		verifications[i].FileURL = signedURL
	}

	if verifications == nil {
		verifications = []models.Verification{}
	}
	return verifications, nil
}
