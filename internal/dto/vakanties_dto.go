package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type VakantieRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"required,datetime=2006-01-02"`
}

// VakantieAdminRequest lets an admin book a vacation on behalf of a user.
type VakantieAdminRequest struct {
	UserID    uint   `json:"user_id"    validate:"required"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"required,datetime=2006-01-02"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VakantieResponse struct {
	ID        uint   `json:"id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	UserID    uint   `json:"user_id"`
}

// VakantieWithUserResponse is the admin listing entry with the owner nested.
type VakantieWithUserResponse struct {
	ID        uint         `json:"id"`
	StartDate string       `json:"start_date"`
	EndDate   string       `json:"end_date"`
	User      UserResponse `json:"user"`
}

// ResourceResponse feeds the vacation planner's resource lane per employee.
// GroupID 1 = full-time, 2 = part-time.
type ResourceResponse struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	GroupID int    `json:"groupId"`
}

// CalendarEventResponse is the calendar projection of a vacation.
type CalendarEventResponse struct {
	ID         uint   `json:"id"`
	Start      string `json:"start"`
	End        string `json:"end"`
	ResourceID uint   `json:"resourceId"`
}
