package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"github.com/Lmsantos89/boat-manager-app/internal/auth"
	"github.com/gin-gonic/gin" // Gin web framework
)

// UsernameKey is the gin context key under which the verified caller
// username is stored for the duration of one request.
const UsernameKey = "username"

// JWTAuthMiddleware validates bearer tokens and establishes the caller
// identity for the request. Missing and invalid tokens are rejected
// identically; no further detail is revealed.
func JWTAuthMiddleware(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string
		username, err := tokens.Verify(tokenStr)              // Verify signature and expiry
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		// Attach the caller identity, unless one was already established
		// earlier in processing
		if _, exists := c.Get(UsernameKey); !exists {
			c.Set(UsernameKey, username)
		}
		c.Next() // Proceed to the next handler
	}
}
