package storage

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Storage is the gateway to one remote bucket. Two instances exist at
// runtime: the public profile-photos bucket and the private
// verification-documents bucket.
type Storage interface {
	// Save stores an object under the given key
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error

	// Delete removes the object at the given key
	Delete(ctx context.Context, path string) error

	// DeleteMany removes several objects, stopping at the first failure
	DeleteMany(ctx context.Context, paths []string) error

	// Exists checks whether an object exists at the given key
	Exists(ctx context.Context, path string) (bool, error)

	// List returns all keys under the given prefix
	List(ctx context.Context, prefix string) ([]string, error)

	// GetURL returns the public URL for an object (public buckets)
	GetURL(ctx context.Context, path string) (string, error)

	// GetSignedURL returns a time-limited read link (private buckets)
	GetSignedURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

// Config holds per-bucket storage configuration.
type Config struct {
	Type      string // local, s3
	BasePath  string // for local storage
	BaseURL   string // public URL base
	Bucket    string
	Region    string // for s3
	AccessKey string // for s3
	SecretKey string // for s3
	Endpoint  string // provider's S3-compatible endpoint
}

// PurgePrefix removes every object under the given prefix, typically a
// per-user folder. Used for account cleanup.
func PurgePrefix(ctx context.Context, s Storage, prefix string) error {
	keys, err := s.List(ctx, prefix)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.DeleteMany(ctx, keys)
}

// NewStorage creates a storage instance for one bucket.
func NewStorage(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
