package model

import "time"

// Role names in use: "admin", "werknemer", "monteur", "part-time".
// There is no hierarchy — every route enumerates the roles allowed to call it.
type Role struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"uniqueIndex;not null"`
	Description string `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
