package middleware

import (
	"github.com/gin-gonic/gin"
	apierrors "github.com/sanchalak/sanchalak-api/internal/errors"
	"github.com/sanchalak/sanchalak-api/internal/models"
)

// RequireRole rejects requests whose authenticated principal does not
// hold one of the allowed roles. Must run after RequireAuth.
func RequireRole(allowed ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := GetCurrentUser(c)
		if !ok {
			apierrors.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}

		for _, role := range allowed {
			if user.Role == role {
				c.Next()
				return
			}
		}

		apierrors.Forbidden(c, "Forbidden: Access denied")
		c.Abort()
	}
}
