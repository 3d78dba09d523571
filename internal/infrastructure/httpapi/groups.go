package httpapi

import (
	"context"
	"net/url"
	"strings"

	"github.com/actify/actify-cli/internal/core/domain"
	"github.com/actify/actify-cli/internal/core/ports"
)

type createGroupPayload struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// MyGroups lists the groups the current user belongs to.
func (c *Client) MyGroups(ctx context.Context) ([]domain.Group, error) {
	var groups []domain.Group
	if err := c.getJSON(ctx, "/groups/user", &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// PublicGroups lists groups open for discovery.
func (c *Client) PublicGroups(ctx context.Context) ([]domain.Group, error) {
	var groups []domain.Group
	if err := c.getJSON(ctx, "/groups/public", &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// Create makes a new group; the server assigns the invite code and puts the
// creator in members and admins.
func (c *Client) CreateGroup(ctx context.Context, in ports.CreateGroupInput) (*domain.Group, error) {
	var group domain.Group
	payload := createGroupPayload{Name: in.Name, Description: in.Description}
	if err := c.postJSON(ctx, "/groups", payload, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// Get fetches a group's detail view, including members, today's activity
// and the pending pool.
func (c *Client) Group(ctx context.Context, groupID string) (*domain.GroupDetail, error) {
	var detail domain.GroupDetail
	if err := c.getJSON(ctx, "/groups/"+url.PathEscape(groupID), &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Join redeems an invite code. Codes are case-insensitive on the client
// side; the server stores them uppercase.
func (c *Client) JoinGroup(ctx context.Context, inviteCode string) (*domain.Group, error) {
	form := url.Values{"invite_code": {strings.ToUpper(strings.TrimSpace(inviteCode))}}

	var group domain.Group
	if err := c.postForm(ctx, "/groups/join", form, &group); err != nil {
		return nil, err
	}
	return &group, nil
}

// PromoteAdmin grants admin rights to a member. Authorization is checked
// server-side.
func (c *Client) PromoteAdmin(ctx context.Context, groupID, userID string) error {
	path := "/groups/" + url.PathEscape(groupID) + "/admins/" + url.PathEscape(userID) + "/add"
	return c.post(ctx, path, nil)
}

// RemoveMember removes a member from the group. Authorization is checked
// server-side.
func (c *Client) RemoveMember(ctx context.Context, groupID, userID string) error {
	path := "/groups/" + url.PathEscape(groupID) + "/members/" + url.PathEscape(userID) + "/remove"
	return c.post(ctx, path, nil)
}

// Leaderboard fetches the group's ranked members, computed server-side.
func (c *Client) GroupLeaderboard(ctx context.Context, groupID string) ([]domain.LeaderboardEntry, error) {
	var entries []domain.LeaderboardEntry
	if err := c.getJSON(ctx, "/groups/"+url.PathEscape(groupID)+"/leaderboard", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
