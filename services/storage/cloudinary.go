package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CloudinaryStorageService implements StorageService using Cloudinary.
type CloudinaryStorageService struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorageService creates a new CloudinaryStorageService.
func NewCloudinaryStorageService(cloudName, apiKey, apiSecret string) (*CloudinaryStorageService, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloudinary client: %w", err)
	}
	return &CloudinaryStorageService{cld: cld}, nil
}

// Upload streams an object to Cloudinary and returns its public ID as the
// storage key.
func (s *CloudinaryStorageService) Upload(ctx context.Context, destFolder, fileName, contentType string, body io.Reader) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, body, uploader.UploadParams{
		Folder:   destFolder,
		PublicID: uuid.New().String(),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload object: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("no public ID returned")
	}
	return result.PublicID, nil
}

// Delete removes an object from Cloudinary given its public ID.
func (s *CloudinaryStorageService) Delete(ctx context.Context, key string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: key}); err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// GetDownloadURL returns the delivery URL for an object. Cloudinary delivery
// URLs do not expire, so the duration is ignored.
func (s *CloudinaryStorageService) GetDownloadURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	img, err := s.cld.Image(key)
	if err != nil {
		return "", fmt.Errorf("failed to resolve asset: %w", err)
	}
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("failed to build asset URL: %w", err)
	}
	return url, nil
}
