package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sanchalak/sanchalak-api/internal/constants"
	apierrors "github.com/sanchalak/sanchalak-api/internal/errors"
	"github.com/sanchalak/sanchalak-api/internal/models"
	"github.com/sanchalak/sanchalak-api/internal/services"
)

// RequireAuth verifies the Bearer token and loads the principal from the
// directory so handlers see the current role, not the one at issue time.
func RequireAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			apierrors.Unauthorized(c, "Not authorized, token missing")
			c.Abort()
			return
		}

		claims, err := authService.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			apierrors.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		user, err := authService.GetUser(claims.UserID)
		if err != nil {
			apierrors.Unauthorized(c, "User no longer exists")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, user.ID)
		c.Set(constants.ContextKeyUser, user)
		c.Next()
	}
}

// GetCurrentUser retrieves the authenticated user from context.
func GetCurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(constants.ContextKeyUser)
	if !exists {
		return nil, false
	}

	user, ok := value.(*models.User)
	return user, ok
}

// GetUserID retrieves the current user ID from context.
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	switch v := userID.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
