package api

import (
	"errors"                          // Error inspection
	"net/http"                        // HTTP status codes
	"payroll_tracker/internal/domain" // Domain errors

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// respondError maps domain errors to HTTP statuses; anything unknown is logged and
// answered with a 500 carrying the given message
func respondError(c *gin.Context, err error, message string) {
	var verrs domain.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "fields": verrs}) // Field level details
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrDuplicateEmployeeID), errors.Is(err, domain.ErrAlreadyInitialized):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	default:
		// Log the error with context
		logrus.WithFields(logrus.Fields{
			"method": c.Request.Method, // HTTP method
			"path":   c.FullPath(),     // Route pattern
			"error":  err.Error(),      // Error message
		}).Error(message)
		c.JSON(http.StatusInternalServerError, gin.H{"error": message})
	}
}
