package model

import "time"

// BouwPlan is one parcel entry of the yearly cropping plan: which crop goes
// on which parcel, its surface in hectares and who drew it in.
type BouwPlan struct {
	ID             uint `gorm:"primaryKey"`
	Year           *int
	Ha             *float64
	Link           *string
	Gewas          *string
	IngetekendDoor *string
	Opmerking      *string
	PerceelNummer  *string
	Werknaam       *string
	Mest           *string
	CreatedBy      string `gorm:"not null"`
	LastModifiedBy *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (BouwPlan) TableName() string { return "bouwplannen" }
