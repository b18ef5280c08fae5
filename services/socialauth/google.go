package socialauth

import "time"

// Google rotates keys frequently, cache for 1 hour.
var googleKeys = newKeySet("https://www.googleapis.com/oauth2/v3/certs", 1*time.Hour)

// ValidateGoogleToken validates the Google ID token and returns user info.
func ValidateGoogleToken(tokenStr string, audience string) (*UserInfo, error) {
	return verifyIDToken(tokenStr, audience, googleKeys, func(iss string) bool {
		return iss == "accounts.google.com" || iss == "https://accounts.google.com"
	})
}
