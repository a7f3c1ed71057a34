package api

import (
	"net/http"                            // HTTP status codes
	"payroll_tracker/internal/repository" // Record store
	"time"                                // Clock

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// ListAbsencesHandler returns the absences of a period, optionally one day and one employee
func ListAbsencesHandler(absences repository.AbsenceRepository, now func() time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter, err := absenceFilter(c, now()) // Parse month, year, day and employee_id
		if err != nil {
			respondError(c, err, "Invalid request")
			return
		}
		list, err := absences.Find(c.Request.Context(), filter)
		if err != nil {
			respondError(c, err, "Failed to fetch absences")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"absences": list,         // Matching records
			"month":    filter.Month, // Resolved month
			"year":     filter.Year,  // Resolved year
			"day":      filter.Day,   // Resolved day, null for the whole month
		})
	}
}

// GetAbsenceHandler returns one absence
func GetAbsenceHandler(absences repository.AbsenceRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c, "id")
		if err != nil {
			respondError(c, err, "Invalid request")
			return
		}
		absence, err := absences.GetByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Failed to fetch absence")
			return
		}
		c.JSON(http.StatusOK, absence)
	}
}

// CreateAbsenceHandler records an absence for an existing employee
func CreateAbsenceHandler(absences repository.AbsenceRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AbsenceRequest // Bind JSON request to struct
		if err := bindJSON(c, &req); err != nil {
			respondError(c, err, "Invalid request")
			return
		}
		absence := req.Absence() // Apply defaults
		if err := absences.Create(c.Request.Context(), &absence); err != nil {
			respondError(c, err, "Failed to record absence")
			return
		}
		// Log the new record
		logrus.WithFields(logrus.Fields{
			"id":          absence.ID,         // Absence ID
			"employee_id": absence.EmployeeID, // Employee ID
			"month":       absence.Month,      // Month
			"year":        absence.Year,       // Year
		}).Info("Absence recorded")
		c.JSON(http.StatusCreated, absence)
	}
}

// UpdateAbsenceHandler overwrites an absence
func UpdateAbsenceHandler(absences repository.AbsenceRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c, "id")
		if err != nil {
			respondError(c, err, "Invalid request")
			return
		}
		var req AbsenceRequest // Bind JSON request to struct
		if err := bindJSON(c, &req); err != nil {
			respondError(c, err, "Invalid request")
			return
		}
		absence := req.Absence() // Apply defaults
		absence.ID = id
		if err := absences.Update(c.Request.Context(), &absence); err != nil {
			respondError(c, err, "Failed to update absence")
			return
		}
		updated, err := absences.GetByID(c.Request.Context(), id) // Reload to return date_recorded
		if err != nil {
			respondError(c, err, "Failed to fetch absence")
			return
		}
		logrus.WithField("id", id).Info("Absence updated") // Log update
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteAbsenceHandler removes one absence
func DeleteAbsenceHandler(absences repository.AbsenceRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c, "id")
		if err != nil {
			respondError(c, err, "Invalid request")
			return
		}
		if err := absences.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err, "Failed to delete absence")
			return
		}
		logrus.WithField("id", id).Info("Absence deleted") // Log deletion
		c.JSON(http.StatusOK, gin.H{"message": "Absence deleted"})
	}
}
