package model

import "time"

// AllowedUser is an invitation: an email address pre-authorized to complete
// registration. Stored lowercased; deleted when the registration succeeds.
type AllowedUser struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (AllowedUser) TableName() string { return "allowed_users" }
