package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// UpdateUserRequest applies partial updates: only fields present in the JSON
// body are written, so every field is a pointer.
type UpdateUserRequest struct {
	FirstName       *string `json:"first_name"       validate:"omitempty,min=1,max=255"`
	LastName        *string `json:"last_name"        validate:"omitempty,min=1,max=255"`
	DateOfBirth     *string `json:"date_of_birth"    validate:"omitempty,datetime=2006-01-02"`
	TelephoneNumber *string `json:"telephone_number" validate:"omitempty,max=255"`
}

type UpdateAddressRequest struct {
	Street     *string `json:"street"      validate:"omitempty,max=255"`
	Number     *string `json:"number"      validate:"omitempty,max=255"`
	PostalCode *string `json:"postal_code" validate:"omitempty,max=255"`
	City       *string `json:"city"        validate:"omitempty,max=255"`
	Country    *string `json:"country"     validate:"omitempty,max=255"`
}

type AddRoleToUserRequest struct {
	UserID uint `json:"user_id" validate:"required"`
	RoleID uint `json:"role_id" validate:"required"`
}

type RemoveRoleFromUserRequest struct {
	UserID uint `json:"user_id" validate:"required"`
	RoleID uint `json:"role_id" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type AddressResponse struct {
	Street     *string `json:"street"`
	Number     *string `json:"number"`
	PostalCode *string `json:"postal_code"`
	City       *string `json:"city"`
	Country    *string `json:"country"`
}

type UserResponse struct {
	ID              uint             `json:"id"`
	CreatedAt       string           `json:"created_at"`
	LastModifiedAt  string           `json:"last_modified_at"`
	FirstName       *string          `json:"first_name"`
	LastName        *string          `json:"last_name"`
	DateOfBirth     *string          `json:"date_of_birth"`
	Email           string           `json:"email"`
	TelephoneNumber *string          `json:"telephone_number"`
	IsActive        bool             `json:"is_active"`
	Roles           []RoleResponse   `json:"roles"`
	Address         *AddressResponse `json:"address"`
}
