package user

import (
	"fmt"

	"tripdesk/models"
	"tripdesk/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetUserByID retrieves a user by its unique ID with credentials projected out.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	usr, err := s.Repo.GetByIDWithProjection(userID, bson.M{"passwordHash": 0, "tokenHash": 0})
	if err != nil {
		return nil, fmt.Errorf("user not found")
	}
	return usr, nil
}

// UpdateUserProfile updates name and role of an existing account.
func (s *DefaultUserService) UpdateUserProfile(userID, name, role string) (*models.User, error) {
	updateDoc := bson.M{}
	if name != "" {
		updateDoc["name"] = name
	}
	if role != "" {
		if role != models.RoleAdmin && role != models.RoleAgent {
			return nil, fmt.Errorf("invalid role %q", role)
		}
		updateDoc["role"] = role
	}
	if len(updateDoc) == 0 {
		return nil, fmt.Errorf("nothing to update")
	}

	if err := s.Repo.UpdateSetDocument(userID, updateDoc); err != nil {
		utils.GetLogger().Error("UpdateUserProfile: update failed", zap.Error(err))
		return nil, fmt.Errorf("failed to update user")
	}
	return s.GetUserByID(userID)
}

// DeactivateUser marks an account inactive and revokes its token.
func (s *DefaultUserService) DeactivateUser(userID string) error {
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"active": false}); err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	return s.RevokeUserAuthToken(userID)
}

// GetAllUsers returns all accounts with credentials projected out.
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}
