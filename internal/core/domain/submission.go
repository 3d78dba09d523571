package domain

import "time"

// Location is an optional geotag on a submission.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Submission is photo evidence posted against a daily challenge. Votes is
// the set of voter IDs; VoteCount is only populated by the submission list
// endpoint and is the figure the UI displays.
type Submission struct {
	ID              string              `json:"id"`
	ActivityID      string              `json:"activity_id"`
	UserID          string              `json:"user_id"`
	Username        string              `json:"username,omitempty"`
	ProfilePhotoURL string              `json:"profile_photo_url,omitempty"`
	PhotoURL        string              `json:"photo_url"`
	Caption         string              `json:"caption,omitempty"`
	SubmittedAt     time.Time           `json:"submitted_at"`
	Votes           []string            `json:"votes"`
	VoteCount       int                 `json:"vote_count"`
	Reactions       map[string][]string `json:"reactions,omitempty"`
	Location        *Location           `json:"location,omitempty"`
}

// VotedBy reports whether userID is among the submission's voters.
func (s Submission) VotedBy(userID string) bool {
	for _, id := range s.Votes {
		if id == userID {
			return true
		}
	}
	return false
}
