package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateMaintenanceRequest struct {
	MachineID        uint    `json:"machine_id" validate:"required"`
	IssueDescription string  `json:"issue_description" validate:"required,min=1"`
	Status           string  `json:"status" validate:"required,min=1,max=255"`
	Priority         *string `json:"priority"`
}

type UpdateMaintenanceRequest struct {
	ID               uint    `json:"id" validate:"required"`
	IssueDescription *string `json:"issue_description"`
	Status           *string `json:"status"   validate:"omitempty,max=255"`
	Priority         *string `json:"priority" validate:"omitempty,max=255"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MaintenanceResponse struct {
	ID               uint             `json:"id"`
	CreatedAt        string           `json:"created_at"`
	CreatedBy        string           `json:"created_by"`
	LastModifiedAt   string           `json:"last_modified_at"`
	LastModifiedBy   *string          `json:"last_modified_by"`
	IssueDescription *string          `json:"issue_description"`
	Status           *string          `json:"status"`
	Priority         *string          `json:"priority"`
	Machine          *MachineResponse `json:"machine,omitempty"`
	User             *UserResponse    `json:"user,omitempty"`
}
