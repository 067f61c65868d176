package model

import "time"

// MaintenanceIssue is a maintenance ticket reported against a machine.
type MaintenanceIssue struct {
	ID               uint `gorm:"primaryKey"`
	IssueDescription *string
	Status           *string
	Priority         *string
	CreatedBy        string `gorm:"not null"`
	LastModifiedBy   *string
	MachineID        uint `gorm:"not null;index"`
	UserID           uint `gorm:"not null;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Machine *Machine `gorm:"foreignKey:MachineID"`
	User    *User    `gorm:"foreignKey:UserID"`
}

func (MaintenanceIssue) TableName() string { return "machine_maintenance" }
