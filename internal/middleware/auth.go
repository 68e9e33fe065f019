// Package middleware provides HTTP middleware for the blog service.
package middleware

import (
	"net/http"
	"strings"

	"github.com/Jeff114514/jeff-blog/internal/service"
	"github.com/Jeff114514/jeff-blog/pkg/response"
	"github.com/gin-gonic/gin"
)

// UserIDKey is the context key the authenticated user id is stored
// under after token validation.
const UserIDKey = "userID"

// RequireAuth returns middleware that validates the bearer token from
// the Authorization header and stores the subject user id on the
// context.
func RequireAuth(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.New(http.StatusUnauthorized, "authentication required", nil))
			return
		}

		claims, err := tokens.Validate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.New(http.StatusUnauthorized, "invalid or expired token", nil))
			return
		}

		userID, err := claims.UserID()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				response.New(http.StatusUnauthorized, "invalid token subject", nil))
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	parts := strings.Split(bearerToken, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
