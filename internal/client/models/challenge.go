package models

// Challenge is a self-chosen weekly challenge.
type Challenge struct {
	ID            string `json:"id"`
	UserID        string `json:"userId"`
	Nombre        string `json:"nombre"`
	WeekStartDate string `json:"weekStartDate"`
	CreatedAt     string `json:"createdAt"`
}

// MaxChallenges is the most challenges a user may hold at once.
const MaxChallenges = 3
