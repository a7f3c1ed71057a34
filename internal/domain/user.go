package domain

import "time"

// User Model
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`                     // Primary key
	Username  string    `gorm:"unique;not null;size:100" json:"username"` // Unique username
	Password  string    `gorm:"not null;size:200" json:"-"`               // Hashed password
	CreatedAt time.Time `json:"created_at"`                               // Creation timestamp
}
