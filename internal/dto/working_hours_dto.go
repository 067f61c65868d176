package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// UpsertWorkingHoursRequest creates the entry for the date when none exists,
// otherwise partially updates it (only fields present are applied).
type UpsertWorkingHoursRequest struct {
	Date        string   `json:"date"        validate:"required,datetime=2006-01-02"`
	Hours       *float64 `json:"hours"       validate:"omitempty,min=0,max=24"`
	Milkings    *int     `json:"milkings"    validate:"omitempty,min=0"`
	Description *string  `json:"description"`
	Submitted   *bool    `json:"submitted"`
}

// ReleaseRequest unlocks (submitted=false) every entry in the date range.
type ReleaseRequest struct {
	UserID   uint   `json:"user_id"   validate:"required"`
	FromDate string `json:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate   string `json:"to_date"   validate:"required,datetime=2006-01-02"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type WorkingHoursResponse struct {
	ID             uint    `json:"id"`
	Date           string  `json:"date"`
	Hours          float64 `json:"hours"`
	HoursFormatted string  `json:"hours_formatted_for_frontend"`
	Milkings       int     `json:"milkings"`
	Description    *string `json:"description"`
	Submitted      bool    `json:"submitted"`
	CreatedBy      string  `json:"created_by"`
	LastModifiedBy *string `json:"last_modified_by"`
}

// WeekData is one ISO-week bucket. Submitted is ternary: nil means the
// account did not yet exist during that week.
type WeekData struct {
	Year         int                    `json:"year"`
	Week         int                    `json:"week"`
	WeekStart    string                 `json:"week_start"`
	WeekEnd      string                 `json:"week_end"`
	SumHours     float64                `json:"sum_hours"`
	SumMilkings  int                    `json:"sum_milkings"`
	Submitted    *bool                  `json:"submitted"`
	WorkingHours []WorkingHoursResponse `json:"working_hours"`
}

// WeekOverviewResponse nests the week buckets under the employee record
// (single-user admin view).
type WeekOverviewResponse struct {
	Werknemer UserResponse `json:"werknemer"`
	WeekData  []WeekData   `json:"week_data"`
}

// EmployeeWeekInfo is one employee's totals inside an admin-wide week bucket.
type EmployeeWeekInfo struct {
	UserID       uint                   `json:"user_id"`
	Name         string                 `json:"name"`
	SumHours     float64                `json:"sum_hours"`
	SumMilkings  int                    `json:"sum_milkings"`
	Submitted    *bool                  `json:"submitted"`
	WorkingHours []WorkingHoursResponse `json:"working_hours"`
}

type AdminWeekData struct {
	Year         int                `json:"year"`
	Week         int                `json:"week"`
	WeekStart    string             `json:"week_start"`
	WeekEnd      string             `json:"week_end"`
	EmployeeInfo []EmployeeWeekInfo `json:"employee_info"`
}

// MonthData is one calendar-month bucket of the year overview. Month names
// are Dutch to match the frontends.
type MonthData struct {
	Month    string  `json:"month"`
	Hours    float64 `json:"hours"`
	Milkings int     `json:"milkings"`
}

// MonthSumsResponse carries per-month totals, keyed by month number (1-12),
// counting submitted entries only.
type MonthSumsResponse struct {
	Hours    map[int]float64 `json:"hours"`
	Milkings map[int]int     `json:"milkings"`
}
