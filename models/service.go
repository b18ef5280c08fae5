package models

import "time"

// TravelService is a bookable service offered through the back office
// (airport transfer, day tour, point-to-point trip).
type TravelService struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	BasePrice       int64     `bson:"basePrice" json:"basePrice"`
	Currency        string    `bson:"currency" json:"currency"`
	DurationMinutes int       `bson:"durationMinutes,omitempty" json:"durationMinutes,omitempty"`
	Active          bool      `bson:"active" json:"active"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// TravelServiceInput is the payload for creating or updating a travel service.
type TravelServiceInput struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	BasePrice       int64  `json:"basePrice" binding:"required,min=0"`
	Currency        string `json:"currency" binding:"omitempty,len=3"`
	DurationMinutes int    `json:"durationMinutes" binding:"min=0"`
}
