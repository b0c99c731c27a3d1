package dto

import "amora_backend/internal/models"

// PhotoUploadOptions are the non-file form fields sent alongside a
// profile photo upload.
type PhotoUploadOptions struct {
	IsProfile bool
	Position  int
}

// PhotoUploadResponse is returned by POST /api/upload/profile-photo.
type PhotoUploadResponse struct {
	Success bool                 `json:"success"`
	Photo   *models.ProfilePhoto `json:"photo"`
	Message string               `json:"message"`
}

// VerificationUploadResponse is returned by POST /api/upload/verification.
type VerificationUploadResponse struct {
	Success      bool                 `json:"success"`
	Verification *models.Verification `json:"verification"`
	Message      string               `json:"message"`
}
