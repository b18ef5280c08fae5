package models

import "time"

// Provider is a partner company operating vehicles and experiences.
type Provider struct {
	ID          string    `bson:"id" json:"id"`
	CompanyName string    `bson:"companyName" json:"companyName"`
	ContactName string    `bson:"contactName,omitempty" json:"contactName,omitempty"`
	Email       string    `bson:"email" json:"email"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Rating      float64   `bson:"rating" json:"rating"`
	Active      bool      `bson:"active" json:"active"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ProviderInput is the payload for creating or updating a provider.
type ProviderInput struct {
	CompanyName string  `json:"companyName" binding:"required"`
	ContactName string  `json:"contactName"`
	Email       string  `json:"email" binding:"required,email"`
	Phone       string  `json:"phone"`
	Rating      float64 `json:"rating" binding:"min=0,max=5"`
}
