package dto

// BouwPlanRequest doubles as create and partial-update payload. Year defaults
// to the current year when omitted on create.
type BouwPlanRequest struct {
	Year           *int     `json:"year"`
	Ha             *float64 `json:"ha"`
	Link           *string  `json:"link"`
	Gewas          *string  `json:"gewas"`
	IngetekendDoor *string  `json:"ingetekend_door"`
	Opmerking      *string  `json:"opmerking"`
	PerceelNummer  *string  `json:"perceel_nummer"`
	Werknaam       *string  `json:"werknaam"`
	Mest           *string  `json:"mest"`
}

type BouwPlanResponse struct {
	ID             uint     `json:"id"`
	Year           *int     `json:"year"`
	Ha             *float64 `json:"ha"`
	Link           *string  `json:"link"`
	Gewas          *string  `json:"gewas"`
	IngetekendDoor *string  `json:"ingetekend_door"`
	Opmerking      *string  `json:"opmerking"`
	PerceelNummer  *string  `json:"perceel_nummer"`
	Werknaam       *string  `json:"werknaam"`
	Mest           *string  `json:"mest"`
	CreatedAt      string   `json:"created_at"`
}
