package socialauth

import "time"

// Apple keys rotate rarely, cache for 24 hours.
var appleKeys = newKeySet("https://appleid.apple.com/auth/keys", 24*time.Hour)

// ValidateAppleToken validates the Apple ID token and returns user info.
// Apple only includes the email claim on the first sign-in unless the token
// was requested with the email scope.
func ValidateAppleToken(tokenStr string, audience string) (*UserInfo, error) {
	return verifyIDToken(tokenStr, audience, appleKeys, func(iss string) bool {
		return iss == "https://appleid.apple.com"
	})
}
