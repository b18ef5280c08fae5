package middleware

import (
	"context"
	"net/http"
	"strings"

	userRepo "tripdesk/database/repository/user"
	"tripdesk/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Context keys set by JWTAuthMiddleware.
const (
	CtxUserID = "userID"
	CtxRole   = "userRole"
)

// JWTAuthMiddleware validates the bearer token against the stored token hash,
// cache-first with a database fallback. A token whose hash no longer matches
// the user record has been revoked by logout or password change.
func JWTAuthMiddleware(repo userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		userID, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + userID

		authCache := utils.GetAuthCacheClient()
		cacheEnabled := authCache != nil
		if !cacheEnabled {
			zap.L().Warn("Auth cache client not available, falling back to DB lookup")
		}

		if cacheEnabled {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash == computedHash {
					_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
					c.Set(CtxUserID, userID)
					c.Set(CtxRole, role)
					c.Next()
					return
				}
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked"})
				return
			} else if err != redis.Nil {
				zap.L().Warn("Auth cache lookup failed, falling back to DB", zap.Error(err))
			}
		}

		proj := bson.M{"id": 1, "role": 1, "tokenHash": 1, "active": 1}
		usr, err := repo.GetByIDWithProjection(userID, proj)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication error"})
			return
		}
		if !usr.Active || usr.TokenHash == "" || usr.TokenHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked"})
			return
		}

		if cacheEnabled {
			_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxRole, usr.Role)
		c.Next()
	}
}
