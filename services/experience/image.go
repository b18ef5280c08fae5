package experience

import (
	"context"
	"fmt"
	"io"
	"time"

	"tripdesk/models"
	"tripdesk/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	imageFolder = "experiences"
	// Presigned URLs returned to the admin UI stay valid for an hour.
	downloadURLTTL = time.Hour
	maxImageBytes  = 10 << 20
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// UploadImage stores the object, then inserts the image document and primary
// pointer update in one transaction. A failed insert leaves an orphan object
// which the purge worker cannot see, so we delete it eagerly.
func (s *DefaultImageService) UploadImage(ctx context.Context, experienceID, fileName, contentType string, sizeBytes int64, body io.Reader, makePrimary bool) (*models.ExperienceImage, error) {
	if !allowedImageTypes[contentType] {
		return nil, fmt.Errorf("unsupported content type %q", contentType)
	}
	if sizeBytes <= 0 || sizeBytes > maxImageBytes {
		return nil, fmt.Errorf("image size must be between 1 byte and %d bytes", maxImageBytes)
	}

	exp, err := s.Repo.GetByID(experienceID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve experience: %w", err)
	}
	if exp == nil {
		return nil, fmt.Errorf("experience %s not found", experienceID)
	}

	key, err := s.Storage.Upload(ctx, imageFolder, fileName, contentType, body)
	if err != nil {
		utils.GetLogger().Error("UploadImage: storage upload failed", zap.Error(err))
		return nil, fmt.Errorf("failed to store image")
	}

	img := &models.ExperienceImage{
		ID:           uuid.New().String(),
		ExperienceID: experienceID,
		StorageKey:   key,
		FileName:     fileName,
		ContentType:  contentType,
		SizeBytes:    sizeBytes,
	}
	if err := s.Repo.InsertImage(img, makePrimary); err != nil {
		utils.GetLogger().Error("UploadImage: insert failed", zap.Error(err),
			zap.String("storageKey", key))
		if delErr := s.Storage.Delete(ctx, key); delErr != nil {
			utils.GetLogger().Warn("UploadImage: orphan object cleanup failed",
				zap.Error(delErr), zap.String("storageKey", key))
		}
		return nil, fmt.Errorf("failed to save image")
	}

	if url, err := s.Storage.GetDownloadURL(ctx, key, downloadURLTTL); err == nil {
		img.URL = url
	}
	return img, nil
}

// SetPrimaryImage repoints the experience at one of its active images.
func (s *DefaultImageService) SetPrimaryImage(experienceID, imageID string) error {
	return s.Repo.SetPrimaryImage(experienceID, imageID)
}

// DeleteImage soft-deletes an image. The stored object stays until the purge
// worker removes it after the grace window.
func (s *DefaultImageService) DeleteImage(experienceID, imageID string) error {
	promoted, err := s.Repo.SoftDeleteImage(experienceID, imageID)
	if err != nil {
		utils.GetLogger().Error("DeleteImage: delete failed", zap.Error(err))
		return fmt.Errorf("failed to delete image")
	}
	if promoted != "" {
		utils.GetLogger().Info("DeleteImage: promoted new primary image",
			zap.String("experienceId", experienceID), zap.String("imageId", promoted))
	}
	return nil
}

// ListImages returns the active images of an experience with download URLs.
func (s *DefaultImageService) ListImages(ctx context.Context, experienceID string) ([]models.ExperienceImage, error) {
	images, err := s.Repo.ListImages(experienceID)
	if err != nil {
		return nil, err
	}
	for i := range images {
		url, err := s.Storage.GetDownloadURL(ctx, images[i].StorageKey, downloadURLTTL)
		if err != nil {
			utils.GetLogger().Warn("ListImages: URL resolution failed",
				zap.Error(err), zap.String("imageId", images[i].ID))
			continue
		}
		images[i].URL = url
	}
	return images, nil
}

// PurgeExpired deletes stored objects and documents for soft-deleted images
// past the grace window. Storage failures skip the document so the next run
// retries the object.
func (s *DefaultImageService) PurgeExpired(ctx context.Context, graceDays int, limit int64) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -graceDays)
	images, err := s.Repo.ListPurgeable(cutoff, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to list purgeable images: %w", err)
	}

	purged := 0
	for _, img := range images {
		if err := s.Storage.Delete(ctx, img.StorageKey); err != nil {
			utils.GetLogger().Warn("PurgeExpired: object delete failed",
				zap.Error(err), zap.String("imageId", img.ID))
			continue
		}
		if err := s.Repo.HardDeleteImage(img.ID); err != nil {
			utils.GetLogger().Warn("PurgeExpired: document delete failed",
				zap.Error(err), zap.String("imageId", img.ID))
			continue
		}
		purged++
	}
	return purged, nil
}
