package user

import (
	"fmt"

	"tripdesk/config"
	"tripdesk/models"
	"tripdesk/services/socialauth"
	"tripdesk/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SocialSignIn verifies a provider ID token server-side, finds or creates the
// matching staff account by email and issues a session token.
func (s *DefaultUserService) SocialSignIn(provider, idToken string) (*models.AuthResponse, error) {
	var (
		info *socialauth.UserInfo
		err  error
	)
	switch provider {
	case models.AuthProviderGoogle:
		info, err = socialauth.ValidateGoogleToken(idToken, config.AppConfig.GoogleClientID)
	case models.AuthProviderMicrosoft:
		info, err = socialauth.ValidateMicrosoftToken(idToken, config.AppConfig.MicrosoftClientID)
	case models.AuthProviderApple:
		info, err = socialauth.ValidateAppleToken(idToken, config.AppConfig.AppleClientID)
	default:
		return nil, fmt.Errorf("unsupported sign-in provider %q", provider)
	}
	if err != nil {
		utils.GetLogger().Warn("SocialSignIn: token validation failed",
			zap.String("provider", provider), zap.Error(err))
		return nil, fmt.Errorf("sign-in token could not be verified")
	}

	userRec, err := s.Repo.GetByEmail(info.Email)
	if err != nil {
		utils.GetLogger().Error("SocialSignIn: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("sign-in failed, please try again")
	}

	if userRec == nil {
		name := info.Name
		if name == "" {
			name = info.Email
		}
		userRec = &models.User{
			ID:           uuid.New().String(),
			Name:         name,
			Email:        info.Email,
			Role:         models.RoleAgent,
			AuthProvider: provider,
			Active:       true,
		}
		if err := s.Repo.Create(userRec); err != nil {
			utils.GetLogger().Error("SocialSignIn: failed to create user", zap.Error(err))
			return nil, fmt.Errorf("sign-in failed, please try again")
		}
	} else if !userRec.Active {
		return nil, fmt.Errorf("this account has been deactivated")
	}

	return s.issueToken(userRec)
}
