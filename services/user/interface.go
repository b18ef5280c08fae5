package user

import (
	userRepo "tripdesk/database/repository/user"
	"tripdesk/models"
)

// UserService defines business logic for staff account operations.
type UserService interface {
	// RegisterUser validates the registration details and creates a new
	// staff account.
	RegisterUser(req models.UserRegistration) (*models.AuthResponse, error)
	// AuthenticateUser verifies credentials and returns ID and token.
	AuthenticateUser(email, password string) (*models.AuthResponse, error)
	// SocialSignIn verifies a provider ID token, finds or creates the
	// matching account and returns ID and token.
	SocialSignIn(provider, idToken string) (*models.AuthResponse, error)
	// GetUserByID retrieves a user (safe view) by its unique ID.
	GetUserByID(userID string) (*models.User, error)
	// UpdateUserProfile updates name and role of an existing account.
	UpdateUserProfile(userID, name, role string) (*models.User, error)
	// DeactivateUser marks an account inactive and revokes its token.
	DeactivateUser(userID string) error
	// RevokeUserAuthToken revokes the user's authentication token (logout).
	RevokeUserAuthToken(userID string) error
	// UpdateUserPassword verifies the current password and updates it.
	UpdateUserPassword(userID, currentPassword, newPassword string) error
	// GetAllUsers returns all accounts (admin surface).
	GetAllUsers() ([]models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
