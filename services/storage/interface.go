package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"tripdesk/config"
)

// StorageService defines the interface for image object storage.
type StorageService interface {
	// Upload streams an object into the backend under destFolder and returns
	// the storage key identifying it.
	Upload(ctx context.Context, destFolder, fileName, contentType string, body io.Reader) (string, error)
	// Delete removes an object from the backend.
	Delete(ctx context.Context, key string) error
	// GetDownloadURL returns a time-limited URL for reading an object.
	GetDownloadURL(ctx context.Context, key string, expires time.Duration) (string, error)
}

// NewStorageService builds the backend selected by STORAGE_BACKEND.
func NewStorageService() (StorageService, error) {
	switch config.AppConfig.StorageBackend {
	case "s3":
		return NewS3StorageService(config.AppConfig.AWSRegion, config.AppConfig.S3Bucket)
	case "cloudinary":
		return NewCloudinaryStorageService(
			config.AppConfig.CloudinaryCloudName,
			config.AppConfig.CloudinaryAPIKey,
			config.AppConfig.CloudinaryAPISecret,
		)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", config.AppConfig.StorageBackend)
	}
}
