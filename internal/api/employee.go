package api

import (
	"net/http"                            // HTTP status codes
	"payroll_tracker/internal/repository" // Record store

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// ListEmployeesHandler returns every employee
func ListEmployeesHandler(employees repository.EmployeeRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := employees.List(c.Request.Context())
		if err != nil {
			respondError(c, err, "Failed to fetch employees")
			return
		}
		c.JSON(http.StatusOK, gin.H{"employees": list})
	}
}

// GetEmployeeHandler returns one employee
func GetEmployeeHandler(employees repository.EmployeeRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c, "id")
		if err != nil {
			respondError(c, err, "Invalid request")
			return
		}
		employee, err := employees.GetByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err, "Failed to fetch employee")
			return
		}
		c.JSON(http.StatusOK, employee)
	}
}

// CreateEmployeeHandler adds an employee with a unique employee ID
func CreateEmployeeHandler(employees repository.EmployeeRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req EmployeeRequest // Bind JSON request to struct
		if err := bindJSON(c, &req); err != nil {
			respondError(c, err, "Invalid request")
			return
		}
		employee, err := req.Employee() // Validate input
		if err != nil {
			respondError(c, err, "Invalid request")
			return
		}
		if err := employees.Create(c.Request.Context(), &employee); err != nil {
			respondError(c, err, "Failed to create employee")
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"id":          employee.ID,         // Internal ID
			"employee_id": employee.EmployeeID, // External ID
		}).Info("Employee created")
		c.JSON(http.StatusCreated, employee)
	}
}

// UpdateEmployeeHandler overwrites an employee
func UpdateEmployeeHandler(employees repository.EmployeeRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c, "id")
		if err != nil {
			respondError(c, err, "Invalid request")
			return
		}
		var req EmployeeRequest // Bind JSON request to struct
		if err := bindJSON(c, &req); err != nil {
			respondError(c, err, "Invalid request")
			return
		}
		employee, err := req.Employee() // Validate input
		if err != nil {
			respondError(c, err, "Invalid request")
			return
		}
		employee.ID = id
		if err := employees.Update(c.Request.Context(), &employee); err != nil {
			respondError(c, err, "Failed to update employee")
			return
		}
		logrus.WithField("id", id).Info("Employee updated") // Log update
		c.JSON(http.StatusOK, employee)
	}
}

// DeleteEmployeeHandler removes an employee together with its absences
func DeleteEmployeeHandler(employees repository.EmployeeRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseID(c, "id")
		if err != nil {
			respondError(c, err, "Invalid request")
			return
		}
		if err := employees.Delete(c.Request.Context(), id); err != nil {
			respondError(c, err, "Failed to delete employee")
			return
		}
		logrus.WithField("id", id).Info("Employee deleted") // Log deletion
		c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
	}
}
