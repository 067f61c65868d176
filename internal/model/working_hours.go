package model

import (
	"fmt"
	"time"
)

// WorkingHours is one timesheet entry: the hours and milkings a user reports
// for a single date. At most one entry per (user, date).
type WorkingHours struct {
	ID             uint      `gorm:"primaryKey"`
	Date           time.Time `gorm:"type:date;not null;uniqueIndex:idx_user_date"`
	Hours          float64   `gorm:"not null;default:0"`
	Milkings       int       `gorm:"not null;default:0"`
	Description    *string
	Submitted      bool   `gorm:"not null;default:false"`
	CreatedBy      string `gorm:"not null"`
	LastModifiedBy *string
	UserID         uint `gorm:"not null;uniqueIndex:idx_user_date"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (WorkingHours) TableName() string { return "working_hours" }

// HoursFormatted renders 7.5 as "7:30" for the frontends.
func (w *WorkingHours) HoursFormatted() string {
	whole := int(w.Hours)
	minutes := int((w.Hours - float64(whole)) * 60)
	return fmt.Sprintf("%d:%02d", whole, minutes)
}
