package handlers

import (
	"net/http"

	"tripdesk/middleware"
	"tripdesk/models"
	userService "tripdesk/services/user"
	"tripdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves registration, login and session endpoints.
type AuthHandler struct {
	UserService userService.UserService
}

// RegisterHandler handles POST /api/auth/register.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.UserRegistration
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.UserService.RegisterUser(req)
	if err != nil {
		logger.Error("Registration failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(writeStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.UserService.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		logger.Warn("Authentication failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SocialSignInHandler handles POST /api/auth/oauth/:provider. The body
// carries the provider-issued ID token; the account is found or created by
// its verified email.
func (h *AuthHandler) SocialSignInHandler(c *gin.Context) {
	logger := utils.GetLogger()
	provider := c.Param("provider")

	var req struct {
		IDToken string `json:"idToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.UserService.SocialSignIn(provider, req.IDToken)
	if err != nil {
		logger.Warn("Social sign-in failed", zap.String("provider", provider), zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler handles POST /api/auth/logout.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString(middleware.CtxUserID)

	if err := h.UserService.RevokeUserAuthToken(userID); err != nil {
		logger.Error("Logout failed", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetProfileHandler handles GET /api/auth/me.
func (h *AuthHandler) GetProfileHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString(middleware.CtxUserID)

	usr, err := h.UserService.GetUserByID(userID)
	if err != nil {
		logger.Error("Profile fetch failed", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
		return
	}
	if usr == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdatePasswordHandler handles PUT /api/auth/password.
func (h *AuthHandler) UpdatePasswordHandler(c *gin.Context) {
	logger := utils.GetLogger()
	userID := c.GetString(middleware.CtxUserID)

	var req struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.UserService.UpdateUserPassword(userID, req.CurrentPassword, req.NewPassword); err != nil {
		logger.Warn("Password update failed", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated, sign in again"})
}
