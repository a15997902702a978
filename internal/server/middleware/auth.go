// Package middleware provides the Gin middleware stack for the identity
// service: panic recovery, request IDs, CORS, request logging, rate
// limiting, and the bearer-token authorization gate.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillsenselab/identity/internal/apperrors"
)

// UserIDKey is the Gin context key under which the gate stores the
// authenticated account identifier.
const UserIDKey = "user_id"

// TokenVerifier validates a token string and returns the bound account
// identifier.
type TokenVerifier func(token string) (string, error)

// Auth returns the authorization gate applied to every protected route. It
// either admits the request with the authenticated principal stored in the
// context, or terminates it before any handler logic runs.
//
// A missing or malformed Authorization header is rejected with 403; a header
// in Bearer shape whose token fails verification is rejected with 401. The
// two rejections carry the service's fixed wire messages.
func Auth(verify TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			appErr := apperrors.MissingToken()
			c.AbortWithStatusJSON(appErr.HTTPStatus, gin.H{"error": appErr.Message})
			return
		}

		userID, err := verify(parts[1])
		if err != nil {
			appErr := apperrors.InvalidToken()
			c.AbortWithStatusJSON(appErr.HTTPStatus, gin.H{"error": appErr.Message})
			return
		}

		// Downstream handlers trust only this identifier; everything else
		// about the request remains unauthenticated input.
		c.Set(UserIDKey, userID)
		c.Next()
	}
}
