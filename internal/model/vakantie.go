package model

import "time"

// Vakantie is a vacation date range. Ranges of one user may never overlap;
// touching endpoints count as overlap.
type Vakantie struct {
	ID             uint      `gorm:"primaryKey"`
	StartDate      time.Time `gorm:"type:date;not null"`
	EndDate        time.Time `gorm:"type:date;not null"`
	CreatedBy      string
	LastModifiedBy *string
	UserID         uint `gorm:"not null;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	User *User `gorm:"foreignKey:UserID"`
}

func (Vakantie) TableName() string { return "vakanties" }
