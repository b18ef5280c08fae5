package socialauth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// verifyIDToken parses an RS256 ID token, resolves its signing key from the
// key set by kid, verifies the signature and the aud/exp claims, and checks
// the issuer with issuerOK. Returns the extracted user info.
func verifyIDToken(tokenStr, audience string, ks *keySet, issuerOK func(string) bool) (*UserInfo, error) {
	keys, err := ks.get()
	if err != nil {
		return nil, fmt.Errorf("failed to get provider public keys: %w", err)
	}

	// Parse token without verification to get the kid from header
	parser := new(jwt.Parser)
	unverifiedToken, _, err := parser.ParseUnverified(tokenStr, jwt.MapClaims{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	kid, ok := unverifiedToken.Header["kid"].(string)
	if !ok {
		return nil, errors.New("token missing kid header")
	}

	pubKey, exists := keys[kid]
	if !exists {
		return nil, errors.New("no matching provider public key found")
	}

	// Parse and verify token using the right public key
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return pubKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid ID token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("failed to parse claims")
	}

	if aud, ok := claims["aud"].(string); !ok || aud != audience {
		return nil, errors.New("invalid audience in ID token")
	}
	if iss, ok := claims["iss"].(string); !ok || !issuerOK(iss) {
		return nil, errors.New("invalid issuer in ID token")
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return nil, errors.New("ID token expired")
	}

	email, emailOk := claims["email"].(string)
	if !emailOk || email == "" {
		return nil, errors.New("email claim not found in ID token")
	}

	name, _ := claims["name"].(string)

	return &UserInfo{
		Email: strings.ToLower(email),
		Name:  name,
	}, nil
}
