package domain

import "time"

// Wallet Model
type Wallet struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"` // UUID primary key
	UserID    uint      `gorm:"index;not null" json:"user_id"` // Foreign key to User
	Name      string    `gorm:"not null" json:"name"`          // Display name
	CreatedAt time.Time `json:"created_at"`                    // Timestamp of creation
}
