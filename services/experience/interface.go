package experience

import (
	"context"
	"io"

	providerRepo "tripdesk/database/repository/provider"
	"tripdesk/models"
	"tripdesk/services/storage"
)

// ImageService defines the image pipeline for experiences: upload into object
// storage, primary pointer management, soft delete and the purge path.
type ImageService interface {
	UploadImage(ctx context.Context, experienceID, fileName, contentType string, sizeBytes int64, body io.Reader, makePrimary bool) (*models.ExperienceImage, error)
	SetPrimaryImage(experienceID, imageID string) error
	DeleteImage(experienceID, imageID string) error
	ListImages(ctx context.Context, experienceID string) ([]models.ExperienceImage, error)
	// PurgeExpired removes stored objects and documents for images whose
	// grace window ended. Returns how many images were purged.
	PurgeExpired(ctx context.Context, graceDays int, limit int64) (int, error)
}

// DefaultImageService is the production implementation.
type DefaultImageService struct {
	Repo    providerRepo.ExperienceRepository
	Storage storage.StorageService
}
