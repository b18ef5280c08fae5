package socialauth

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"math/big"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertJWKToPublicKey(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	n := base64.RawURLEncoding.EncodeToString(key.PublicKey.N.Bytes())
	e := base64.RawURLEncoding.EncodeToString(big.NewInt(int64(key.PublicKey.E)).Bytes())

	pub, err := convertJWKToPublicKey(n, e)
	require.NoError(t, err)
	assert.Equal(t, 0, pub.N.Cmp(key.PublicKey.N))
	assert.Equal(t, key.PublicKey.E, pub.E)
}

func TestConvertJWKToPublicKeyBadEncoding(t *testing.T) {
	_, err := convertJWKToPublicKey("not base64url!!", "AQAB")
	assert.Error(t, err)
}

// signedTestToken signs claims with the key under the given kid and returns a
// key set pre-populated with the matching public key.
func signedTestToken(t *testing.T, claims jwt.MapClaims, kid string) (string, *keySet) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid
	tokenStr, err := token.SignedString(key)
	require.NoError(t, err)

	ks := newKeySet("unused", time.Hour)
	ks.keys = map[string]*rsa.PublicKey{kid: &key.PublicKey}
	ks.expires = time.Now().Add(time.Hour)
	return tokenStr, ks
}

func baseClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"aud":   "client-id",
		"iss":   "https://accounts.example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
		"email": "Agent@Example.com",
		"name":  "Agent Example",
	}
}

func TestVerifyIDToken(t *testing.T) {
	tokenStr, ks := signedTestToken(t, baseClaims(), "kid-1")

	info, err := verifyIDToken(tokenStr, "client-id", ks, func(iss string) bool {
		return iss == "https://accounts.example.com"
	})
	require.NoError(t, err)
	assert.Equal(t, "agent@example.com", info.Email)
	assert.Equal(t, "Agent Example", info.Name)
}

func TestVerifyIDTokenWrongAudience(t *testing.T) {
	tokenStr, ks := signedTestToken(t, baseClaims(), "kid-1")

	_, err := verifyIDToken(tokenStr, "other-client", ks, func(string) bool { return true })
	assert.Error(t, err)
}

func TestVerifyIDTokenBadIssuer(t *testing.T) {
	tokenStr, ks := signedTestToken(t, baseClaims(), "kid-1")

	_, err := verifyIDToken(tokenStr, "client-id", ks, func(string) bool { return false })
	assert.Error(t, err)
}

func TestVerifyIDTokenExpired(t *testing.T) {
	claims := baseClaims()
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	tokenStr, ks := signedTestToken(t, claims, "kid-1")

	_, err := verifyIDToken(tokenStr, "client-id", ks, func(string) bool { return true })
	assert.Error(t, err)
}

func TestVerifyIDTokenUnknownKid(t *testing.T) {
	tokenStr, _ := signedTestToken(t, baseClaims(), "kid-1")
	_, other := signedTestToken(t, baseClaims(), "kid-2")

	_, err := verifyIDToken(tokenStr, "client-id", other, func(string) bool { return true })
	assert.Error(t, err)
}

func TestVerifyIDTokenMissingEmail(t *testing.T) {
	claims := baseClaims()
	delete(claims, "email")
	tokenStr, ks := signedTestToken(t, claims, "kid-1")

	_, err := verifyIDToken(tokenStr, "client-id", ks, func(string) bool { return true })
	assert.Error(t, err)
}
