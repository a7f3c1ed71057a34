package domain

// Default working calendar for a new employee
const (
	DefaultWorkingDays  = 22  // Working days per month
	DefaultWorkingHours = 8.0 // Working hours per working day
)

// Employee Model
type Employee struct {
	ID           uint      `gorm:"primaryKey" json:"id"`                            // Primary key
	EmployeeID   string    `gorm:"uniqueIndex;not null;size:50" json:"employee_id"` // External employee identifier
	Name         string    `gorm:"not null;size:100" json:"name"`                   // Display name
	BaseSalary   float64   `gorm:"not null" json:"base_salary"`                     // Monthly base salary
	WorkingDays  int       `gorm:"not null;default:22" json:"working_days"`         // Working days per month
	WorkingHours float64   `gorm:"not null;default:8" json:"working_hours"`         // Working hours per day
	Absences     []Absence `gorm:"foreignKey:EmployeeID;references:ID" json:"-"`    // One-to-many relationship with Absence
}
