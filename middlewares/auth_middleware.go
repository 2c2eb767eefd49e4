package middlewares

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/davidthissen1/Nutrify/models"
	"github.com/davidthissen1/Nutrify/services"
)

const (
	userIDKey      = "userID"
	currentUserKey = "currentUser"
)

// AuthMiddleware resolves the Authorization bearer token to a user via the
// token store and aborts with 401 when it cannot. Database failures are
// logged and returned opaque.
func AuthMiddleware(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid token"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		user, err := auth.ResolveToken(token)
		if err != nil {
			if errors.Is(err, services.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
				return
			}
			log.Printf("auth middleware: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(userIDKey, user.ID)
		c.Set(currentUserKey, user)
		c.Next()
	}
}

// UserID pulls the authenticated user's id out of the request context.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// CurrentUser pulls the full authenticated user out of the request context.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
