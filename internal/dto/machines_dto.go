package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// MachineRequest doubles as create and update-by-work-number payload.
type MachineRequest struct {
	WorkNumber       string  `json:"work_number" validate:"required,min=1,max=255"`
	WorkName         *string `json:"work_name"`
	Category         *string `json:"category"`
	Group            *string `json:"group"`
	BrandName        *string `json:"brand_name"`
	TypeName         *string `json:"type_name"`
	LicenceNumber    *string `json:"licence_number"`
	ChassisNumber    *string `json:"chassis_number"`
	ConstructionYear *int    `json:"construction_year"`
	AscriptionCode   *string `json:"ascription_code"`
	InsuranceType    *string `json:"insurance_type"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MachineResponse struct {
	ID               uint    `json:"id"`
	WorkNumber       string  `json:"work_number"`
	WorkName         *string `json:"work_name"`
	Category         *string `json:"category"`
	Group            *string `json:"group"`
	BrandName        *string `json:"brand_name"`
	TypeName         *string `json:"type_name"`
	LicenceNumber    *string `json:"licence_number"`
	ChassisNumber    *string `json:"chassis_number"`
	ConstructionYear *int    `json:"construction_year"`
	AscriptionCode   *string `json:"ascription_code"`
	InsuranceType    *string `json:"insurance_type"`
}

// SingleMachineResponse bundles the machine with its tickets and the fuel
// transactions booked on its work name.
type SingleMachineResponse struct {
	Info              MachineResponse           `json:"info"`
	MaintenanceIssues []MaintenanceResponse     `json:"maintenance_issues"`
	TankTransactions  []TankTransactionResponse `json:"tank_transactions"`
}
