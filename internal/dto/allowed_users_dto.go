package dto

type AllowedUserRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type AllowedUserResponse struct {
	ID             uint   `json:"id"`
	CreatedAt      string `json:"created_at"`
	LastModifiedAt string `json:"last_modified_at"`
	Email          string `json:"email"`
}
