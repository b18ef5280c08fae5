package models

import "time"

// User roles.
const (
	RoleAdmin = "admin"
	RoleAgent = "agent"
)

// Auth providers recorded on a user account.
const (
	AuthProviderPassword  = "password"
	AuthProviderGoogle    = "google"
	AuthProviderMicrosoft = "microsoft"
	AuthProviderApple     = "apple"
)

// User represents a back-office staff account.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash,omitempty" json:"-"`
	Role         string    `bson:"role" json:"role"`
	AuthProvider string    `bson:"authProvider" json:"authProvider"`
	TokenHash    string    `bson:"tokenHash,omitempty" json:"-"`
	Active       bool      `bson:"active" json:"active"`
	LastLoginAt  time.Time `bson:"lastLoginAt,omitempty" json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// UserRegistration is the payload for password signup.
type UserRegistration struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"omitempty,oneof=admin agent"`
}

// AuthResponse is returned after a successful authentication.
type AuthResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
