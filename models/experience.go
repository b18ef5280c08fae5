package models

import "time"

// Experience is a tour or excursion offered by a provider. The experience
// owns the pointer to its current primary image; images never carry a
// primary flag themselves.
type Experience struct {
	ID             string    `bson:"id" json:"id"`
	ProviderID     string    `bson:"providerId" json:"providerId"`
	Title          string    `bson:"title" json:"title"`
	Description    string    `bson:"description,omitempty" json:"description,omitempty"`
	Price          int64     `bson:"price" json:"price"`
	Currency       string    `bson:"currency" json:"currency"`
	PrimaryImageID string    `bson:"primaryImageId,omitempty" json:"primaryImageId,omitempty"`
	Active         bool      `bson:"active" json:"active"`
	CreatedAt      time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ExperienceInput is the payload for creating or updating an experience.
type ExperienceInput struct {
	ProviderID  string `json:"providerId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Price       int64  `json:"price" binding:"required,min=0"`
	Currency    string `json:"currency" binding:"omitempty,len=3"`
}

// ExperienceImage is a stored image belonging to an experience. StorageKey
// identifies the object in the configured storage backend. Soft-deleted
// images keep the stored object until the purge worker removes it after the
// grace window.
type ExperienceImage struct {
	ID           string    `bson:"id" json:"id"`
	ExperienceID string    `bson:"experienceId" json:"experienceId"`
	StorageKey   string    `bson:"storageKey" json:"-"`
	FileName     string    `bson:"fileName" json:"fileName"`
	ContentType  string    `bson:"contentType" json:"contentType"`
	SizeBytes    int64     `bson:"sizeBytes" json:"sizeBytes"`
	URL          string    `bson:"-" json:"url,omitempty"`
	Active       bool      `bson:"active" json:"active"`
	DeletedAt    time.Time `bson:"deletedAt,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}
