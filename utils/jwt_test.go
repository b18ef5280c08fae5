package utils

import (
	"testing"
	"time"

	"tripdesk/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("user-1", "agent@example.com", "agent", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sub, role, err := ExtractClaimsFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", sub)
	assert.Equal(t, "agent", role)
}

func TestExpiredTokenRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"

	token, err := GenerateToken("user-1", "agent@example.com", "agent", -time.Minute)
	require.NoError(t, err)

	_, _, err = ExtractClaimsFromToken(token)
	assert.Error(t, err)
}

func TestTokenWithWrongSecretRejected(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	token, err := GenerateToken("user-1", "agent@example.com", "agent", time.Hour)
	require.NoError(t, err)

	config.AppConfig.JWTSecret = "other-secret"
	_, _, err = ExtractClaimsFromToken(token)
	assert.Error(t, err)
}

func TestHashTokenStable(t *testing.T) {
	h1 := HashToken("abc")
	h2 := HashToken("abc")
	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 64)
	assert.NotEqual(t, h1, HashToken("abd"))
}
