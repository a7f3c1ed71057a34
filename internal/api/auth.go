package api

import (
	"context"                             // Context for revocation
	"net/http"                            // HTTP status codes
	"payroll_tracker/internal/account"    // Account setup and credential checks
	"payroll_tracker/internal/middleware" // Context keys
	"payroll_tracker/internal/repository" // Record store
	"payroll_tracker/internal/utils"      // Utility functions
	"time"                                // Token lifetime

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// TokenRevoker remembers logged out tokens
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// Response struct for authentication
type AuthResponse struct {
	Token string `json:"token"` // JWT token
}

// SetupHandler creates the administrator account on first run
func SetupHandler(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CredentialsRequest // Bind JSON request to struct
		if err := bindJSON(c, &req); err != nil {
			respondError(c, err, "Invalid request")
			return
		}
		user, err := account.Setup(c.Request.Context(), users, req.Username, req.Password)
		if err != nil {
			respondError(c, err, "Failed to create administrator")
			return
		}
		logrus.WithField("username", user.Username).Info("Administrator account created") // Log setup
		c.JSON(http.StatusCreated, gin.H{"message": "Administrator created", "username": user.Username})
	}
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(users repository.UserRepository, jwtSecret string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CredentialsRequest // Bind JSON request to struct
		if err := bindJSON(c, &req); err != nil {
			respondError(c, err, "Invalid request")
			return
		}
		user, err := account.Authenticate(c.Request.Context(), users, req.Username, req.Password)
		if err != nil {
			// Log failed attempts without the password
			logrus.WithField("username", req.Username).Warn("Login failed")
			respondError(c, err, "Login failed")
			return
		}
		// Generate JWT token
		token, err := utils.GenerateJWT(user.ID, user.Username, jwtSecret, ttl)
		if err != nil {
			// If token generation fails, return internal server error
			respondError(c, err, "Failed to generate token")
			return
		}
		// Return the token in the response
		c.JSON(http.StatusOK, AuthResponse{Token: token})
	}
}

// LogoutHandler revokes the token the request was made with
func LogoutHandler(revoker TokenRevoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet(middleware.ContextClaims).(*utils.Claims) // Set by JWTAuthMiddleware
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if err := revoker.Revoke(c.Request.Context(), claims.ID, claims.ExpiresAt.Time); err != nil {
			respondError(c, err, "Failed to log out")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}
