package domain

import "time"

// LeaderboardEntry is one row of a group leaderboard, fully computed
// server-side. Score is fractional because reactions are worth half a point.
type LeaderboardEntry struct {
	UserID           string     `json:"user_id"`
	GroupID          string     `json:"group_id"`
	Username         string     `json:"username"`
	ProfilePhotoURL  string     `json:"profile_photo_url,omitempty"`
	Score            float64    `json:"score"`
	Streak           int        `json:"streak"`
	Rank             int        `json:"rank"`
	PreviousRank     int        `json:"previous_rank"`
	Badges           []string   `json:"badges"`
	SubmissionsCount int        `json:"submissions_count"`
	LastActive       *time.Time `json:"last_active,omitempty"`
}

// Movement is the rank delta since the previous leaderboard snapshot.
// Positive means the user climbed. Zero when there is no history yet.
func (e LeaderboardEntry) Movement() int {
	if e.PreviousRank == 0 {
		return 0
	}
	return e.PreviousRank - e.Rank
}

// GlobalEntry is one row of the cross-group global leaderboard.
type GlobalEntry struct {
	ID                  string `json:"id"`
	Username            string `json:"username"`
	ProfilePhotoURL     string `json:"profile_photo_url,omitempty"`
	Streak              int    `json:"streak"`
	TotalPoints         int    `json:"total_points"`
	CompletedChallenges int    `json:"completed_challenges"`
	Rank                int    `json:"rank"`
}
