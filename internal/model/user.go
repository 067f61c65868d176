package model

import (
	"time"

	"github.com/google/uuid"
)

// User stores registered accounts. Accounts start inactive and become active
// once the registration confirmation token is redeemed.
type User struct {
	ID              uint   `gorm:"primaryKey"`
	FirstName       *string
	LastName        *string
	DateOfBirth     *time.Time `gorm:"type:date"`
	Email           string     `gorm:"uniqueIndex;not null"`
	TelephoneNumber *string
	HashedPassword  string `gorm:"not null"`
	IsActive        bool   `gorm:"not null;default:false"`
	// Confirmation holds the jti of the outstanding registration token; nil
	// once the account is activated.
	Confirmation *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Roles               []Role              `gorm:"many2many:user_roles"`
	Address             *Address            `gorm:"foreignKey:UserID"`
	WorkingHours        []WorkingHours      `gorm:"foreignKey:UserID"`
	Vakanties           []Vakantie          `gorm:"foreignKey:UserID"`
	DeviceLoginStatuses []DeviceLoginStatus `gorm:"foreignKey:UserID"`
}

// FullName is used in vacation calendar resources and the admin week overview.
func (u *User) FullName() string {
	first, last := "", ""
	if u.FirstName != nil {
		first = *u.FirstName
	}
	if u.LastName != nil {
		last = *u.LastName
	}
	return first + " " + last
}

// HasRole reports whether the user carries the named role.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}
