package domain

// User Model
type User struct {
	ID       uint   `gorm:"primaryKey"`      // Primary key
	Username string `gorm:"unique;not null"` // Unique username, case-sensitive
	Password string `gorm:"not null"`        // Hashed password, never serialized outward
}
