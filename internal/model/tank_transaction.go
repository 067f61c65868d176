package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TankTransaction is one fuel-tank dispensing record, imported from the tank
// installation. The start timestamp uniquely identifies a transaction.
type TankTransaction struct {
	ID                  uint `gorm:"primaryKey"`
	Vehicle             *string
	Driver              *string
	TransactionType     *string
	AcquisitionMode     *string
	TransactionStatus   *string
	StartDateTime       time.Time `gorm:"uniqueIndex;not null"`
	TransactionNumber   *int
	Product             *string
	Quantity            decimal.Decimal `gorm:"type:decimal(10,2)"`
	TransactionDuration *string
	Meter               decimal.Decimal `gorm:"type:decimal(12,2)"`
	MeterType           *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
