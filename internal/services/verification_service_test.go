package services_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"amora_backend/internal/models"
	"amora_backend/internal/repositories"
	"amora_backend/internal/services"
	"amora_backend/internal/services/dto"
	"amora_backend/internal/storage"
	"amora_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var documentPolicy = services.UploadPolicy{
	MaxSize:      20 * 1024 * 1024,
	AllowedTypes: []string{"image/jpeg", "image/png", "image/webp", "application/pdf"},
}

func newVerificationService(store storage.Storage) services.VerificationService {
	return services.NewVerificationService(
		repositories.NewVerificationRepository(),
		store,
		documentPolicy,
		time.Hour,
	)
}

func TestVerificationUploadAcceptsPDF(t *testing.T) {
	db := setupTestDB(t)
	store := newLocalStorage(t, "verification-documents")
	svc := newVerificationService(store)

	header := makeFileHeader(t, "document", "passport.pdf", "application/pdf", []byte("%PDF-1.4"))

	result, err := svc.Upload(context.Background(), db, "user-a", header, "passport")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "Verification document uploaded successfully", result.Message)
	require.NotNil(t, result.Verification)
	assert.Equal(t, "user-a", result.Verification.UserID)
	assert.Equal(t, "passport", result.Verification.Type)
	assert.Equal(t, models.VerificationPending, result.Verification.Status)
	assert.NotEmpty(t, result.Verification.FileURL)

	exists, err := store.Exists(context.Background(), result.Verification.StoragePath)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestVerificationUploadRequiresType(t *testing.T) {
	db := setupTestDB(t)
	store := newLocalStorage(t, "verification-documents")
	svc := newVerificationService(store)

	header := makeFileHeader(t, "document", "passport.pdf", "application/pdf", []byte("%PDF-1.4"))

	_, err := svc.Upload(context.Background(), db, "user-a", header, "")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestVerificationUploadRejectsDisallowedType(t *testing.T) {
	db := setupTestDB(t)
	store := newLocalStorage(t, "verification-documents")
	svc := newVerificationService(store)

	header := makeFileHeader(t, "document", "notes.txt", "text/plain", []byte("hello"))

	_, err := svc.Upload(context.Background(), db, "user-a", header, "passport")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Invalid file type. Allowed types: image/jpeg, image/png, image/webp, application/pdf", appErr.Message)

	keys, err := store.List(context.Background(), "user-a/")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestVerificationUploadRejectsOversized(t *testing.T) {
	db := setupTestDB(t)
	store := newLocalStorage(t, "verification-documents")
	svc := newVerificationService(store)

	oversized := bytes.Repeat([]byte("a"), int(documentPolicy.MaxSize)+1)
	header := makeFileHeader(t, "document", "scan.pdf", "application/pdf", oversized)

	_, err := svc.Upload(context.Background(), db, "user-a", header, "passport")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Equal(t, "File size exceeds 20MB limit", appErr.Message)

	keys, err := store.List(context.Background(), "user-a/")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

// A file between the two ceilings is too big for a profile photo but
// still fits as a verification document.
func TestVerificationAcceptsFileAbovePhotoCeiling(t *testing.T) {
	db := setupTestDB(t)
	photoStore := newLocalStorage(t, "profile-photos")
	documentStore := newLocalStorage(t, "verification-documents")
	photoSvc := newPhotoService(photoStore)
	verificationSvc := newVerificationService(documentStore)

	createProfile(t, db, "user-a", "Alice")
	midsized := bytes.Repeat([]byte("a"), int(photoPolicy.MaxSize)+1)

	photoHeader := makeFileHeader(t, "photo", "selfie.jpg", "image/jpeg", midsized)
	_, err := photoSvc.Upload(context.Background(), db, "user-a", photoHeader, dto.PhotoUploadOptions{})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "File size exceeds 10MB limit", appErr.Message)

	documentHeader := makeFileHeader(t, "document", "selfie.jpg", "image/jpeg", midsized)
	result, err := verificationSvc.Upload(context.Background(), db, "user-a", documentHeader, "selfie")
	require.NoError(t, err)
	assert.Equal(t, models.VerificationPending, result.Verification.Status)

	exists, err := documentStore.Exists(context.Background(), result.Verification.StoragePath)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestVerificationListRefreshesURLs(t *testing.T) {
	db := setupTestDB(t)
	store := newLocalStorage(t, "verification-documents")
	svc := newVerificationService(store)

	header := makeFileHeader(t, "document", "selfie.jpg", "image/jpeg", []byte("jpeg-bytes"))
	_, err := svc.Upload(context.Background(), db, "user-a", header, "selfie")
	require.NoError(t, err)

	verifications, err := svc.ListMine(context.Background(), db, "user-a")
	require.NoError(t, err)

	require.Len(t, verifications, 1)
	assert.NotEmpty(t, verifications[0].FileURL)
}

func TestVerificationListEmptyForNewUser(t *testing.T) {
	db := setupTestDB(t)
	store := newLocalStorage(t, "verification-documents")
	svc := newVerificationService(store)

	verifications, err := svc.ListMine(context.Background(), db, "user-nobody")
	require.NoError(t, err)
	assert.NotNil(t, verifications)
	assert.Empty(t, verifications)
}
