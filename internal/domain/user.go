package domain

import "time"

// User Model
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`         // Primary key
	Email     string    `gorm:"unique;not null" json:"email"` // Unique login email
	Name      string    `json:"name"`                         // Display name
	Password  string    `gorm:"not null" json:"-"`            // Hashed password
	CreatedAt time.Time `json:"created_at"`                   // Timestamp of registration
}
