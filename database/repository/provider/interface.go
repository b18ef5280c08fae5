package providerRepo

import (
	"time"

	"tripdesk/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ProviderRepository defines methods for provider data access.
type ProviderRepository interface {
	Create(p *models.Provider) error
	GetByID(id string) (*models.Provider, error)
	UpdateSetDocument(id string, updateDoc bson.M) error
	SoftDelete(id string) error
	List(q models.ListQuery) ([]models.Provider, int64, int64, error)
	CountActive() (int64, error)
}

// ExperienceRepository defines methods for experience and experience image
// data access. Image writes that touch the parent's primary pointer run in a
// single mongo transaction.
type ExperienceRepository interface {
	Create(e *models.Experience) error
	GetByID(id string) (*models.Experience, error)
	UpdateSetDocument(id string, updateDoc bson.M) error
	SoftDelete(id string) error
	List(q models.ListQuery) ([]models.Experience, int64, int64, error)
	ListByProvider(providerID string) ([]models.Experience, error)

	// InsertImage inserts an image document and, when makePrimary is set or
	// the experience has no primary yet, points the parent at it — both
	// writes in one transaction.
	InsertImage(img *models.ExperienceImage, makePrimary bool) error
	// SetPrimaryImage points the experience at an existing active image.
	SetPrimaryImage(experienceID, imageID string) error
	// SoftDeleteImage marks an image deleted and, when it was the primary,
	// promotes the next-oldest active image (or clears the pointer) in the
	// same transaction. Returns the promoted image ID, if any.
	SoftDeleteImage(experienceID, imageID string) (string, error)
	// GetImage retrieves an image by ID regardless of its active flag.
	GetImage(imageID string) (*models.ExperienceImage, error)
	// ListImages returns the active images of an experience, oldest first.
	ListImages(experienceID string) ([]models.ExperienceImage, error)
	// ListPurgeable returns soft-deleted images whose grace window expired
	// before the cutoff.
	ListPurgeable(cutoff time.Time, limit int64) ([]models.ExperienceImage, error)
	// HardDeleteImage removes an image document after its stored object has
	// been purged.
	HardDeleteImage(imageID string) error
}
