package services

import (
	"fmt"
	"mime/multipart"
	"strings"

	"amora_backend/pkg/apperrors"

	"github.com/google/uuid"
)

// UploadPolicy is the per-bucket size and MIME allow-list.
type UploadPolicy struct {
	MaxSize      int64
	AllowedTypes []string
}

// validateUpload rejects oversized or disallowed files before any byte
// reaches storage. Returns the file's content type on success.
func validateUpload(domain string, header *multipart.FileHeader, policy UploadPolicy) (string, error) {
	contentType := header.Header.Get("Content-Type")

	allowed := false
	for _, t := range policy.AllowedTypes {
		if contentType == t {
			allowed = true
			break
		}
	}
	if !allowed {
		return "", apperrors.NewBadRequestError(domain,
			fmt.Sprintf("Invalid file type. Allowed types: %s", strings.Join(policy.AllowedTypes, ", ")))
	}

	if header.Size > policy.MaxSize {
		return "", apperrors.NewBadRequestError(domain,
			fmt.Sprintf("File size exceeds %dMB limit", policy.MaxSize/(1024*1024)))
	}

	return contentType, nil
}

// objectKey builds the bucket key: per-user folder, random name, the
// original file's extension.
func objectKey(userID, fileName string) string {
	ext := ""
	if idx := strings.LastIndex(fileName, "."); idx >= 0 && idx < len(fileName)-1 {
		ext = fileName[idx+1:]
	}
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("%s/%s.%s", userID, uuid.NewString(), ext)
}
