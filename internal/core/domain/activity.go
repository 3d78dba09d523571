package domain

import "time"

// Difficulty levels accepted by the backend.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Activity is a candidate challenge proposed by a group member. It stays
// pending until the backend selects it as a group's daily challenge, at
// which point SelectedForDate is set.
type Activity struct {
	ID              string     `json:"id"`
	GroupID         string     `json:"group_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Emoji           string     `json:"emoji,omitempty"`
	CreatedBy       string     `json:"created_by"`
	CreatedAt       time.Time  `json:"created_at"`
	SelectedForDate *time.Time `json:"selected_for_date,omitempty"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	IsCompleted     bool       `json:"is_completed"`
	Difficulty      string     `json:"difficulty,omitempty"`
}

// Pending reports whether the activity is still waiting to be selected.
func (a Activity) Pending() bool { return a.SelectedForDate == nil }

// Challenge is an activity enriched with schedule context by the
// /challenges endpoints.
type Challenge struct {
	Activity
	IsToday   bool `json:"is_today,omitempty"`
	Completed bool `json:"completed,omitempty"`
}
