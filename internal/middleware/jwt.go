package middleware

import (
	"context"                        // Context for revocation lookups
	"net/http"                       // HTTP status codes
	"payroll_tracker/internal/utils" // JWT utility functions
	"strings"                        // String manipulation

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Context keys set by JWTAuthMiddleware
const (
	ContextUserID = "userID" // Authenticated user ID
	ContextClaims = "claims" // Parsed token claims
)

// RevocationChecker tells whether a token ID was revoked by logout
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// JWTAuthMiddleware validates JWT tokens and extracts user information
func JWTAuthMiddleware(secret string, revoked RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string and parse it
		claims, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil {
			// If parsing fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		isRevoked, err := revoked.IsRevoked(c.Request.Context(), claims.ID) // Check the denylist
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"user_id": claims.UserID, // User ID
				"error":   err.Error(),   // Error message
			}).Error("Token revocation check failed")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Authentication unavailable"})
			return
		}
		if isRevoked {
			// Token was logged out
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(ContextUserID, claims.UserID) // Store userID in context
		c.Set(ContextClaims, claims)        // Store claims for logout
		c.Next()                            // Proceed to the next handler
	}
}
