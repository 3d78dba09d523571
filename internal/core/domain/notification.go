package domain

import "time"

// Notification is a server-generated message for the current user.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
	Type      string    `json:"type"`
	Link      string    `json:"link,omitempty"`
}
