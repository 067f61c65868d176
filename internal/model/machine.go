package model

import "time"

// Machine is one piece of farm equipment, identified by its work number.
type Machine struct {
	ID               uint   `gorm:"primaryKey"`
	WorkNumber       string `gorm:"uniqueIndex;not null"`
	WorkName         *string
	Category         *string
	Group            *string `gorm:"column:machine_group"`
	BrandName        *string
	TypeName         *string
	LicenceNumber    *string
	ChassisNumber    *string
	ConstructionYear *int
	AscriptionCode   *string
	InsuranceType    *string
	CreatedBy        string `gorm:"not null"`
	LastModifiedBy   *string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	MaintenanceIssues []MaintenanceIssue `gorm:"foreignKey:MachineID"`
}
