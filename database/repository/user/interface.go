package userRepo

import (
	"tripdesk/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for staff account data access.
type UserRepository interface {
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by its email address, nil when absent.
	GetByEmail(email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll() ([]models.User, error)
	// Create inserts a new user record.
	Create(user *models.User) error
	// Update modifies an existing user record.
	Update(user *models.User) error
	// UpdateSetDocument applies a partial $set update to a user record.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// GetByIDWithProjection retrieves a user by ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	// GetByEmailWithProjection retrieves a user by email with a projection.
	GetByEmailWithProjection(email string, projection bson.M) (*models.User, error)
}
