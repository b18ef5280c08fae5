package user

import (
	"testing"

	"tripdesk/config"
	"tripdesk/models"
	"tripdesk/utils"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeUserRepo struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: make(map[string]*models.User), byEmail: make(map[string]*models.User)}
}

func (r *fakeUserRepo) GetByID(id string) (*models.User, error) {
	return r.byID[id], nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	var out []models.User
	for _, u := range r.byID {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) Create(u *models.User) error {
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) Update(u *models.User) error {
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	u, ok := r.byID[id]
	if !ok {
		return nil
	}
	if v, ok := updateDoc["tokenHash"].(string); ok {
		u.TokenHash = v
	}
	if v, ok := updateDoc["passwordHash"].(string); ok {
		u.PasswordHash = v
	}
	if v, ok := updateDoc["name"].(string); ok {
		u.Name = v
	}
	if v, ok := updateDoc["role"].(string); ok {
		u.Role = v
	}
	if v, ok := updateDoc["active"].(bool); ok {
		u.Active = v
	}
	return nil
}

func (r *fakeUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	return r.byID[id], nil
}

func (r *fakeUserRepo) GetByEmailWithProjection(email string, projection bson.M) (*models.User, error) {
	return r.byEmail[email], nil
}

func newTestUserService(t *testing.T) (*DefaultUserService, *fakeUserRepo) {
	t.Helper()
	config.AppConfig.JWTSecret = "test-secret"
	config.AppConfig.TokenTTLHours = 1
	// Point the auth cache at a dead address: cache writes fail with a warning
	// and the flows fall through to the repository.
	utils.AuthCacheClient = redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})

	repo := newFakeUserRepo()
	return &DefaultUserService{Repo: repo}, repo
}

func TestRegisterUser(t *testing.T) {
	svc, repo := newTestUserService(t)

	resp, err := svc.RegisterUser(models.UserRegistration{
		Name:     "Sam Okafor",
		Email:    "sam@example.com",
		Password: "sturdy-pass1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleAgent, resp.Role)

	stored := repo.byEmail["sam@example.com"]
	require.NotNil(t, stored)
	assert.Equal(t, utils.HashToken(resp.Token), stored.TokenHash)
	assert.NotEqual(t, "sturdy-pass1", stored.PasswordHash)
	assert.True(t, stored.Active)
}

func TestRegisterUserDuplicateEmail(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.RegisterUser(models.UserRegistration{
		Name: "Sam", Email: "sam@example.com", Password: "sturdy-pass1",
	})
	require.NoError(t, err)

	_, err = svc.RegisterUser(models.UserRegistration{
		Name: "Other", Email: "sam@example.com", Password: "sturdy-pass1",
	})
	assert.Error(t, err)
}

func TestRegisterUserWeakPassword(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.RegisterUser(models.UserRegistration{
		Name: "Sam", Email: "sam@example.com", Password: "lettersonly",
	})
	assert.Error(t, err)
}

func TestAuthenticateUser(t *testing.T) {
	svc, repo := newTestUserService(t)

	reg, err := svc.RegisterUser(models.UserRegistration{
		Name: "Sam", Email: "sam@example.com", Password: "sturdy-pass1",
	})
	require.NoError(t, err)

	resp, err := svc.AuthenticateUser("sam@example.com", "sturdy-pass1")
	require.NoError(t, err)
	assert.Equal(t, reg.ID, resp.ID)
	// Login rotates the stored token hash.
	assert.Equal(t, utils.HashToken(resp.Token), repo.byID[reg.ID].TokenHash)

	_, err = svc.AuthenticateUser("sam@example.com", "wrong-pass1")
	assert.Error(t, err)
}

func TestAuthenticateUserSocialAccountGuard(t *testing.T) {
	svc, repo := newTestUserService(t)
	repo.Create(&models.User{
		ID: "u-1", Email: "oauth@example.com", AuthProvider: models.AuthProviderGoogle, Active: true,
	})

	_, err := svc.AuthenticateUser("oauth@example.com", "whatever1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "google")
}

func TestAuthenticateUserDeactivated(t *testing.T) {
	svc, repo := newTestUserService(t)

	reg, err := svc.RegisterUser(models.UserRegistration{
		Name: "Sam", Email: "sam@example.com", Password: "sturdy-pass1",
	})
	require.NoError(t, err)
	repo.byID[reg.ID].Active = false

	_, err = svc.AuthenticateUser("sam@example.com", "sturdy-pass1")
	assert.Error(t, err)
}

func TestRevokeUserAuthToken(t *testing.T) {
	svc, repo := newTestUserService(t)

	reg, err := svc.RegisterUser(models.UserRegistration{
		Name: "Sam", Email: "sam@example.com", Password: "sturdy-pass1",
	})
	require.NoError(t, err)

	require.NoError(t, svc.RevokeUserAuthToken(reg.ID))
	assert.Empty(t, repo.byID[reg.ID].TokenHash)
}

func TestUpdateUserPasswordClearsToken(t *testing.T) {
	svc, repo := newTestUserService(t)

	reg, err := svc.RegisterUser(models.UserRegistration{
		Name: "Sam", Email: "sam@example.com", Password: "sturdy-pass1",
	})
	require.NoError(t, err)

	err = svc.UpdateUserPassword(reg.ID, "sturdy-pass1", "fresh-pass22")
	require.NoError(t, err)
	assert.Empty(t, repo.byID[reg.ID].TokenHash)

	_, err = svc.AuthenticateUser("sam@example.com", "fresh-pass22")
	assert.NoError(t, err)
}

func TestVerifyPasswordComplexity(t *testing.T) {
	assert.Error(t, VerifyPasswordComplexity("short1"))
	assert.Error(t, VerifyPasswordComplexity("lettersonly"))
	assert.Error(t, VerifyPasswordComplexity("12345678"))
	assert.NoError(t, VerifyPasswordComplexity("letters99"))
}
