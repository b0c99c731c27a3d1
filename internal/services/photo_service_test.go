package services_test

import (
	"bytes"
	"context"
	"testing"

	"amora_backend/internal/models"
	"amora_backend/internal/repositories"
	"amora_backend/internal/services"
	"amora_backend/internal/services/dto"
	"amora_backend/internal/storage"
	"amora_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var photoPolicy = services.UploadPolicy{
	MaxSize:      10 * 1024 * 1024,
	AllowedTypes: []string{"image/jpeg", "image/png", "image/webp"},
}

func newPhotoService(store storage.Storage) services.PhotoService {
	return services.NewPhotoService(
		repositories.NewProfileRepository(),
		repositories.NewPhotoRepository(),
		store,
		photoPolicy,
	)
}

func TestPhotoUploadRejectsInvalidType(t *testing.T) {
	db := setupTestDB(t)
	store := newLocalStorage(t, "profile-photos")
	svc := newPhotoService(store)

	createProfile(t, db, "user-a", "Alice")
	header := makeFileHeader(t, "photo", "malware.exe", "application/octet-stream", []byte("xx"))

	_, err := svc.Upload(context.Background(), db, "user-a", header, dto.PhotoUploadOptions{})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Equal(t, "Invalid file type. Allowed types: image/jpeg, image/png, image/webp", appErr.Message)

	// Nothing may have reached the bucket.
	keys, err := store.List(context.Background(), "user-a/")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestPhotoUploadRejectsOversized(t *testing.T) {
	db := setupTestDB(t)
	store := newLocalStorage(t, "profile-photos")
	svc := newPhotoService(store)

	createProfile(t, db, "user-a", "Alice")
	oversized := bytes.Repeat([]byte("a"), int(photoPolicy.MaxSize)+1)
	header := makeFileHeader(t, "photo", "big.jpg", "image/jpeg", oversized)

	_, err := svc.Upload(context.Background(), db, "user-a", header, dto.PhotoUploadOptions{})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.HTTPCode)
	assert.Equal(t, "File size exceeds 10MB limit", appErr.Message)

	keys, err := store.List(context.Background(), "user-a/")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestPhotoUploadStoresObjectAndRow(t *testing.T) {
	db := setupTestDB(t)
	store := newLocalStorage(t, "profile-photos")
	svc := newPhotoService(store)

	alice := createProfile(t, db, "user-a", "Alice")
	header := makeFileHeader(t, "photo", "me.jpg", "image/jpeg", []byte("jpeg-bytes"))

	result, err := svc.Upload(context.Background(), db, "user-a", header, dto.PhotoUploadOptions{
		IsProfile: true,
		Position:  2,
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "Profile photo uploaded successfully", result.Message)
	require.NotNil(t, result.Photo)
	assert.Equal(t, alice.ID, result.Photo.ProfileID)
	assert.True(t, result.Photo.IsProfile)
	assert.Equal(t, 2, result.Photo.Position)
	assert.NotEmpty(t, result.Photo.URL)

	exists, err := store.Exists(context.Background(), result.Photo.StoragePath)
	require.NoError(t, err)
	assert.True(t, exists)

	var count int64
	db.Model(&models.ProfilePhoto{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestPhotoDeleteRemovesObjectAndRow(t *testing.T) {
	db := setupTestDB(t)
	store := newLocalStorage(t, "profile-photos")
	svc := newPhotoService(store)

	createProfile(t, db, "user-a", "Alice")
	header := makeFileHeader(t, "photo", "me.png", "image/png", []byte("png-bytes"))

	uploaded, err := svc.Upload(context.Background(), db, "user-a", header, dto.PhotoUploadOptions{})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), db, "user-a", uploaded.Photo.ID))

	exists, err := store.Exists(context.Background(), uploaded.Photo.StoragePath)
	require.NoError(t, err)
	assert.False(t, exists)

	var count int64
	db.Model(&models.ProfilePhoto{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestPhotoDeleteForeignPhotoForbidden(t *testing.T) {
	db := setupTestDB(t)
	store := newLocalStorage(t, "profile-photos")
	svc := newPhotoService(store)

	createProfile(t, db, "user-a", "Alice")
	createProfile(t, db, "user-b", "Bob")
	header := makeFileHeader(t, "photo", "me.webp", "image/webp", []byte("webp-bytes"))

	uploaded, err := svc.Upload(context.Background(), db, "user-a", header, dto.PhotoUploadOptions{})
	require.NoError(t, err)

	err = svc.Delete(context.Background(), db, "user-b", uploaded.Photo.ID)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)

	// Still intact.
	exists, err := store.Exists(context.Background(), uploaded.Photo.StoragePath)
	require.NoError(t, err)
	assert.True(t, exists)
}
