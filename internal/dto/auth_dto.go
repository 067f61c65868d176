package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=255"`
	LastName  string `json:"last_name"  validate:"required,min=1,max=255"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=8"`
}

type ActivateAccountRequest struct {
	Token        string `json:"token" validate:"required"`
	RefreshToken string `json:"refresh_token"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// DeviceLoginRequest is posted by the Ionic app as form data.
type DeviceLoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
	DeviceID string `form:"device_id"`
}

type LogoutRequest struct {
	DeviceID string `json:"device_id" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}
