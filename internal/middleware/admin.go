package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/monlivredecuisine/backend/internal/models"
)

// UserLoader resolves a validated token subject to a stored user.
type UserLoader interface {
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

// RequireAdmin loads the authenticated user and rejects non-admins. Must run
// after AuthMiddleware. The loaded user is stored under "current_user".
func RequireAdmin(loader UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
			c.Abort()
			return
		}

		user, err := loader.GetUserByID(c.Request.Context(), userID.(uint))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			c.Abort()
			return
		}

		if !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}

		c.Set("current_user", user)
		c.Next()
	}
}
