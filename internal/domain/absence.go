package domain

import "time"

// Absence Model
type Absence struct {
	ID           uint      `gorm:"primaryKey" json:"id"`                           // Primary key
	EmployeeID   uint      `gorm:"not null;index" json:"employee_id"`              // Foreign key to Employee
	Day          int       `gorm:"not null;default:1" json:"day"`                  // Calendar day of the absence
	Days         int       `gorm:"not null;default:0" json:"days"`                 // Whole days absent
	Hours        int       `gorm:"not null;default:0" json:"hours"`                // Hours absent
	Minutes      int       `gorm:"not null;default:0" json:"minutes"`              // Minutes absent, not part of the deduction
	Month        int       `gorm:"not null;index:idx_absence_period" json:"month"` // Month of the absence (1-12)
	Year         int       `gorm:"not null;index:idx_absence_period" json:"year"`  // Year of the absence
	Reason       string    `gorm:"size:200" json:"reason"`                         // Free-text reason
	DateRecorded time.Time `gorm:"autoCreateTime" json:"date_recorded"`            // Set when the record is created
}
