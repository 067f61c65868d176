package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type TankTransactionRequest struct {
	Vehicle             *string         `json:"vehicle"`
	Driver              *string         `json:"driver"`
	TransactionType     *string         `json:"transaction_type"`
	AcquisitionMode     *string         `json:"acquisition_mode"`
	TransactionStatus   *string         `json:"transaction_status"`
	StartDateTime       string          `json:"start_date_time" validate:"required"`
	TransactionNumber   *int            `json:"transaction_number"`
	Product             *string         `json:"product"`
	Quantity            decimal.Decimal `json:"quantity" validate:"min=0"`
	TransactionDuration *string         `json:"transaction_duration"`
	Meter               decimal.Decimal `json:"meter" validate:"min=0"`
	MeterType           *string         `json:"meter_type"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TankTransactionResponse struct {
	ID                  uint            `json:"id"`
	Vehicle             *string         `json:"vehicle"`
	Driver              *string         `json:"driver"`
	TransactionType     *string         `json:"transaction_type"`
	AcquisitionMode     *string         `json:"acquisition_mode"`
	TransactionStatus   *string         `json:"transaction_status"`
	StartDateTime       string          `json:"start_date_time"`
	TransactionNumber   *int            `json:"transaction_number"`
	Product             *string         `json:"product"`
	Quantity            decimal.Decimal `json:"quantity"`
	TransactionDuration *string         `json:"transaction_duration"`
	Meter               decimal.Decimal `json:"meter"`
	MeterType           *string         `json:"meter_type"`
}
