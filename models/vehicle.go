package models

import "time"

// VehicleType classifies the fleet (sedan, van, minibus) and carries the
// price multiplier applied when quoting.
type VehicleType struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	DisplayName     string    `bson:"displayName" json:"displayName"`
	Description     string    `bson:"description,omitempty" json:"description,omitempty"`
	MinCapacity     int       `bson:"minCapacity" json:"minCapacity"`
	MaxCapacity     int       `bson:"maxCapacity" json:"maxCapacity"`
	Features        []string  `bson:"features,omitempty" json:"features,omitempty"`
	PriceMultiplier float64   `bson:"priceMultiplier" json:"priceMultiplier"`
	SortOrder       int       `bson:"sortOrder" json:"sortOrder"`
	Active          bool      `bson:"active" json:"active"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}

// VehicleTypeInput is the payload for creating or updating a vehicle type.
type VehicleTypeInput struct {
	Name            string   `json:"name" binding:"required"`
	DisplayName     string   `json:"displayName" binding:"required"`
	Description     string   `json:"description"`
	MinCapacity     int      `json:"minCapacity" binding:"required,min=1"`
	MaxCapacity     int      `json:"maxCapacity" binding:"required,min=1"`
	Features        []string `json:"features"`
	PriceMultiplier float64  `json:"priceMultiplier" binding:"required,gt=0"`
	SortOrder       int      `json:"sortOrder"`
}

// Vehicle is a fleet unit operated by a provider.
type Vehicle struct {
	ID            string    `bson:"id" json:"id"`
	Plate         string    `bson:"plate" json:"plate"`
	Model         string    `bson:"model" json:"model"`
	Year          int       `bson:"year,omitempty" json:"year,omitempty"`
	Capacity      int       `bson:"capacity" json:"capacity"`
	VehicleTypeID string    `bson:"vehicleTypeId" json:"vehicleTypeId"`
	ProviderID    string    `bson:"providerId" json:"providerId"`
	Active        bool      `bson:"active" json:"active"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// VehicleInput is the payload for creating or updating a vehicle.
type VehicleInput struct {
	Plate         string `json:"plate" binding:"required"`
	Model         string `json:"model" binding:"required"`
	Year          int    `json:"year" binding:"omitempty,min=1990"`
	Capacity      int    `json:"capacity" binding:"required,min=1"`
	VehicleTypeID string `json:"vehicleTypeId" binding:"required"`
	ProviderID    string `json:"providerId" binding:"required"`
}
