package domain

// Boat Model
type Boat struct {
	ID          uint   `gorm:"primaryKey"`     // Primary key
	Name        string `gorm:"not null"`       // Boat name
	Description string `gorm:"not null"`       // Boat description
	OwnerID     uint   `gorm:"index;not null"` // Foreign key to User; set at creation, never reassigned
}
