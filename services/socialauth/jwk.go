package socialauth

import (
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"
)

// UserInfo holds user identity extracted from a verified provider token.
type UserInfo struct {
	Email string
	Name  string
}

// jwk represents a single JSON Web Key from a provider's keys endpoint.
type jwk struct {
	Kid string `json:"kid"`
	Alg string `json:"alg"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// jwkResponse represents the response from a provider's keys endpoint.
type jwkResponse struct {
	Keys []jwk `json:"keys"`
}

// keySet fetches and caches RSA public keys from a provider's JWKS endpoint.
type keySet struct {
	url string
	ttl time.Duration

	mu      sync.RWMutex
	keys    map[string]*rsa.PublicKey
	expires time.Time
}

func newKeySet(url string, ttl time.Duration) *keySet {
	return &keySet{url: url, ttl: ttl}
}

// get returns the cached keys, refetching them when the cache expired.
func (ks *keySet) get() (map[string]*rsa.PublicKey, error) {
	ks.mu.RLock()
	if time.Now().Before(ks.expires) && ks.keys != nil {
		defer ks.mu.RUnlock()
		return ks.keys, nil
	}
	ks.mu.RUnlock()

	resp, err := http.Get(ks.url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch keys from %s: %w", ks.url, err)
	}
	defer resp.Body.Close()

	var keyResp jwkResponse
	if err := json.NewDecoder(resp.Body).Decode(&keyResp); err != nil {
		return nil, fmt.Errorf("failed to decode keys response: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey)
	for _, key := range keyResp.Keys {
		pubKey, err := convertJWKToPublicKey(key.N, key.E)
		if err != nil {
			return nil, fmt.Errorf("failed to convert JWK to public key: %w", err)
		}
		keys[key.Kid] = pubKey
	}

	ks.mu.Lock()
	ks.keys = keys
	ks.expires = time.Now().Add(ks.ttl)
	ks.mu.Unlock()

	return keys, nil
}

// convertJWKToPublicKey converts base64url encoded modulus and exponent to rsa.PublicKey.
func convertJWKToPublicKey(n, e string) (*rsa.PublicKey, error) {
	nb, err := base64.RawURLEncoding.DecodeString(n)
	if err != nil {
		return nil, fmt.Errorf("failed to decode modulus: %w", err)
	}
	eb, err := base64.RawURLEncoding.DecodeString(e)
	if err != nil {
		return nil, fmt.Errorf("failed to decode exponent: %w", err)
	}

	// Convert exponent bytes to int
	var exp int
	for _, b := range eb {
		exp = exp<<8 + int(b)
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nb),
		E: exp,
	}, nil
}
