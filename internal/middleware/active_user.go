package middleware

import (
	"errors"                              // Error inspection
	"net/http"                            // HTTP status codes
	"payroll_tracker/internal/domain"     // Importing domain models
	"payroll_tracker/internal/repository" // User lookup

	"github.com/gin-gonic/gin" // Gin web framework
)

// ActiveUserMiddleware checks on each request that the token's user still exists
func ActiveUserMiddleware(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(ContextUserID) // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		id, ok := userID.(uint) // Set by JWTAuthMiddleware
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if _, err := users.GetByID(c.Request.Context(), id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				// Account was removed after the token was issued
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
			return
		}
		// If the user exists, proceed to the next handler
		c.Next()
	}
}
