package model

import "time"

// DeviceLoginStatus tracks the mobile app login per device: at most one row
// per device id, holding the last issued access token for reauthentication.
type DeviceLoginStatus struct {
	ID                      uint    `gorm:"primaryKey"`
	DeviceID                string  `gorm:"uniqueIndex;size:500;not null"`
	LoggedIn                bool    `gorm:"not null;default:false"`
	LastProvidedAccessToken *string `gorm:"size:500"`
	UserID                  uint    `gorm:"not null;index"`
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

func (DeviceLoginStatus) TableName() string { return "login_status_device" }
