package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/go-clean-social/domain"
)

// TokenParser resolves a bearer token to a user id.
type TokenParser interface {
	Parse(raw string) (int64, error)
}

// AuthMiddleware rejects requests without a valid bearer token and stores the user id under "user_id".
func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": domain.ErrUnauthenticated.Error()})
			return
		}

		uid, err := tokens.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": err.Error()})
			return
		}

		c.Set("user_id", uid)
		c.Next()
	}
}
