package socialauth

import (
	"strings"
	"time"
)

// Microsoft publishes keys for all tenants on the common endpoint.
var microsoftKeys = newKeySet("https://login.microsoftonline.com/common/discovery/v2.0/keys", 6*time.Hour)

// ValidateMicrosoftToken validates a Microsoft identity platform ID token and
// returns user info. The issuer is tenant-specific, so only the host part is
// checked.
func ValidateMicrosoftToken(tokenStr string, audience string) (*UserInfo, error) {
	return verifyIDToken(tokenStr, audience, microsoftKeys, func(iss string) bool {
		return strings.HasPrefix(iss, "https://login.microsoftonline.com/") ||
			strings.HasPrefix(iss, "https://sts.windows.net/")
	})
}
