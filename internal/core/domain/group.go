package domain

import "time"

// Member is a group member as rendered inside a group detail.
type Member struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	ProfilePhotoURL string `json:"profile_photo_url,omitempty"`
}

// Group is the list-shape group document (GET /groups/user, /groups/public,
// POST /groups, POST /groups/join). Members and admins are user IDs here.
type Group struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	CreatedBy     string    `json:"created_by"`
	Members       []string  `json:"members"`
	Admins        []string  `json:"admins"`
	InviteCode    string    `json:"invite_code"`
	CreatedAt     time.Time `json:"created_at"`
	GroupPhotoURL string    `json:"group_photo_url,omitempty"`
	MaxMembers    int       `json:"max_members"`
}

// GroupDetail is the expanded document from GET /groups/{id}: members are
// resolved to profiles and today's activity plus the pending pool ride along.
type GroupDetail struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Description       string     `json:"description,omitempty"`
	CreatedBy         string     `json:"created_by"`
	InviteCode        string     `json:"invite_code"`
	CreatedAt         time.Time  `json:"created_at"`
	Members           []Member   `json:"members"`
	Admins            []string   `json:"admins"`
	TodayActivity     *Activity  `json:"today_activity"`
	PendingActivities []Activity `json:"pending_activities"`
}

// IsAdmin reports whether userID may see admin controls. The creator is an
// admin by default server-side, so it counts even when the admins list is
// not populated on this endpoint. Authorization itself is enforced by the
// server; this only gates rendering.
func (g *GroupDetail) IsAdmin(userID string) bool {
	if userID == "" {
		return false
	}
	if userID == g.CreatedBy {
		return true
	}
	for _, id := range g.Admins {
		if id == userID {
			return true
		}
	}
	return false
}
