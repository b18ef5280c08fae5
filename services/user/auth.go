package user

import (
	"context"
	"fmt"
	"time"

	"tripdesk/config"
	"tripdesk/database"
	"tripdesk/models"
	"tripdesk/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func tokenTTL() time.Duration {
	return time.Duration(config.AppConfig.TokenTTLHours) * time.Hour
}

// RegisterUser validates the registration details and creates a new staff
// account with a freshly issued token.
func (s *DefaultUserService) RegisterUser(req models.UserRegistration) (*models.AuthResponse, error) {
	existing, err := s.Repo.GetByEmailWithProjection(req.Email, bson.M{"id": 1})
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email %w", database.ErrDuplicate)
	}

	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	role := req.Role
	if role == "" {
		role = models.RoleAgent
	}

	userObj := models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		AuthProvider: models.AuthProviderPassword,
		Active:       true,
	}

	token, err := utils.GenerateToken(userObj.ID, userObj.Email, userObj.Role, tokenTTL())
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	userObj.TokenHash = utils.HashToken(token)
	userObj.LastLoginAt = time.Now()

	if err := s.Repo.Create(&userObj); err != nil {
		utils.GetLogger().Error("RegisterUser: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return &models.AuthResponse{
		ID:    userObj.ID,
		Token: token,
		Name:  userObj.Name,
		Email: userObj.Email,
		Role:  userObj.Role,
	}, nil
}

// AuthenticateUser verifies credentials, rotates the stored token hash and
// returns a fresh token.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*models.AuthResponse, error) {
	userRec, err := s.Repo.GetByEmailWithProjection(email, nil)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil || !userRec.Active {
		return nil, fmt.Errorf("invalid email or password")
	}
	if userRec.PasswordHash == "" {
		return nil, fmt.Errorf("this account signs in with %s", userRec.AuthProvider)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	return s.issueToken(userRec)
}

// issueToken generates a new JWT for the user, persists its hash and primes
// the auth cache.
func (s *DefaultUserService) issueToken(userRec *models.User) (*models.AuthResponse, error) {
	token, err := utils.GenerateToken(userRec.ID, userRec.Email, userRec.Role, tokenTTL())
	if err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	now := time.Now()
	updateDoc := bson.M{"tokenHash": tokenHash, "lastLoginAt": now}
	if err := s.Repo.UpdateSetDocument(userRec.ID, updateDoc); err != nil {
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	// Refresh the auth cache so the middleware sees the new hash immediately.
	authCache := utils.GetAuthCacheClient()
	cacheKey := utils.AuthCachePrefix + userRec.ID
	if err := authCache.Set(context.Background(), cacheKey, tokenHash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("issueToken: failed to prime auth cache", zap.Error(err))
	}

	return &models.AuthResponse{
		ID:    userRec.ID,
		Token: token,
		Name:  userRec.Name,
		Email: userRec.Email,
		Role:  userRec.Role,
	}, nil
}

// RevokeUserAuthToken clears the stored token hash and the cache entry.
func (s *DefaultUserService) RevokeUserAuthToken(userID string) error {
	if err := s.Repo.UpdateSetDocument(userID, bson.M{"tokenHash": ""}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Del(context.Background(), utils.AuthCachePrefix+userID).Err(); err != nil {
		utils.GetLogger().Warn("RevokeUserAuthToken: failed to clear auth cache", zap.Error(err))
	}
	return nil
}

// UpdateUserPassword verifies the current password and updates it. The stored
// token hash is cleared, forcing a fresh sign-in.
func (s *DefaultUserService) UpdateUserPassword(userID, currentPassword, newPassword string) error {
	userRec, err := s.Repo.GetByIDWithProjection(userID, nil)
	if err != nil {
		return fmt.Errorf("user not found")
	}
	if userRec.PasswordHash == "" {
		return fmt.Errorf("this account signs in with %s", userRec.AuthProvider)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect")
	}
	if err := VerifyPasswordComplexity(newPassword); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("UpdateUserPassword: failed to hash password", zap.Error(err))
		return fmt.Errorf("password update failed, please try again")
	}

	if err := s.Repo.UpdateSetDocument(userID, bson.M{"passwordHash": string(hashed), "tokenHash": ""}); err != nil {
		return fmt.Errorf("password update failed, please try again")
	}
	authCache := utils.GetAuthCacheClient()
	_ = authCache.Del(context.Background(), utils.AuthCachePrefix+userID).Err()
	return nil
}

// VerifyPasswordComplexity enforces the minimum password rules.
func VerifyPasswordComplexity(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			hasLetter = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("password must contain both letters and digits")
	}
	return nil
}
