package domain

import "time"

// GroupSummary is the compact group reference embedded in a user profile.
type GroupSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User is the profile document returned by GET /users/me. The server owns
// it; the client only holds refetchable snapshots.
type User struct {
	ID                  string         `json:"id"`
	Username            string         `json:"username"`
	Email               string         `json:"email"`
	Bio                 string         `json:"bio,omitempty"`
	ProfilePhotoURL     string         `json:"profile_photo_url,omitempty"`
	Interests           []string       `json:"interests"`
	AvailableInterests  []string       `json:"available_interests,omitempty"`
	CreatedAt           time.Time      `json:"created_at"`
	Streak              int            `json:"streak"`
	TotalPoints         int            `json:"total_points"`
	CompletedChallenges int            `json:"completed_challenges"`
	SubmissionsCount    int            `json:"submissions_count"`
	Groups              []GroupSummary `json:"groups"`
}

// Interest is a catalog entry users can tag their profile with.
type Interest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Icon     string `json:"icon,omitempty"`
}
