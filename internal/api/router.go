package api

import (
	"net/http"                            // HTTP status codes
	"payroll_tracker/internal/middleware" // Custom package for middleware
	"payroll_tracker/internal/report"     // Report aggregator
	"payroll_tracker/internal/repository" // Record store
	"payroll_tracker/internal/utils"      // Token denylist
	"time"                                // Clock and token lifetime

	"github.com/gin-gonic/gin" // Gin web framework
)

// Deps is everything the routes need, built by the composition root
type Deps struct {
	Users     repository.UserRepository     // Operator accounts
	Employees repository.EmployeeRepository // Employees
	Absences  repository.AbsenceRepository  // Absences
	Reports   *report.Service               // Report aggregator
	Denylist  *utils.TokenDenylist          // Revoked tokens
	JWTSecret string                        // JWT secret key
	JWTTTL    time.Duration                 // JWT lifetime
	Now       func() time.Time              // Clock for default periods
}

// RegisterRoutes mounts the public and the guarded routes on r
func RegisterRoutes(r *gin.Engine, d Deps) {
	if d.Now == nil {
		d.Now = time.Now // Server clock
	}

	// Public routes
	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) }) // Liveness endpoint
	r.POST("/setup", SetupHandler(d.Users))                                                  // First-run administrator setup
	r.POST("/auth/login", LoginHandler(d.Users, d.JWTSecret, d.JWTTTL))                      // Login endpoint

	// Everything else is protected by JWT
	guarded := r.Group("")
	guarded.Use(middleware.JWTAuthMiddleware(d.JWTSecret, d.Denylist), middleware.ActiveUserMiddleware(d.Users))
	guarded.POST("/auth/logout", LogoutHandler(d.Denylist)) // Logout endpoint

	// Employee routes
	guarded.GET("/employees", ListEmployeesHandler(d.Employees))         // List employees
	guarded.POST("/employees", CreateEmployeeHandler(d.Employees))       // Create employee
	guarded.GET("/employees/:id", GetEmployeeHandler(d.Employees))       // Get employee
	guarded.PUT("/employees/:id", UpdateEmployeeHandler(d.Employees))    // Update employee
	guarded.DELETE("/employees/:id", DeleteEmployeeHandler(d.Employees)) // Delete employee and its absences

	// Absence routes
	guarded.GET("/absences", ListAbsencesHandler(d.Absences, d.Now))  // Query absences by period
	guarded.POST("/absences", CreateAbsenceHandler(d.Absences))       // Record absence
	guarded.GET("/absences/:id", GetAbsenceHandler(d.Absences))       // Get absence
	guarded.PUT("/absences/:id", UpdateAbsenceHandler(d.Absences))    // Update absence
	guarded.DELETE("/absences/:id", DeleteAbsenceHandler(d.Absences)) // Delete absence

	// Report routes
	guarded.GET("/dashboard", DashboardHandler(d.Reports))          // Current month summary
	guarded.GET("/reports", ReportsHandler(d.Reports, d.Now))       // Salary report rows
	guarded.GET("/reports/export", ExportHandler(d.Reports, d.Now)) // CSV export
	guarded.GET("/calendar/days", CalendarDaysHandler(d.Now))       // Days of a month
}
