package middleware

import (
	"net/http"
	"strings"

	"github.com/EasWay/bina-mobile/internal/store"
	"github.com/EasWay/bina-mobile/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer token and re-resolves its subject to
// a live user on every request. All failure modes yield the same 401 so the
// response does not reveal which check failed.
func AuthMiddleware(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			abortUnauthorized(c)
			return
		}

		email, err := utils.ValidateToken(tokenString)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		user, err := users.FindByEmail(email)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set("userID", user.ID)
		c.Set("user", user)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":   "unauthorized",
		"message": "Could not validate credentials",
	})
}
