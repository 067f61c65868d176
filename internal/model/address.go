package model

import "time"

// Address is the single postal address attached to a user.
type Address struct {
	ID         uint `gorm:"primaryKey"`
	Street     *string
	Number     *string
	PostalCode *string
	City       *string
	Country    *string
	UserID     uint `gorm:"uniqueIndex;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
