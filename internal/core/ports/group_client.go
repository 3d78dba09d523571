package ports

import (
	"context"

	"github.com/actify/actify-cli/internal/core/domain"
)

// CreateGroupInput carries the fields for a new group. The invite code and
// membership are assigned server-side.
type CreateGroupInput struct {
	Name        string
	Description string
}

// GroupClient talks to the group endpoints.
type GroupClient interface {
	MyGroups(ctx context.Context) ([]domain.Group, error)
	PublicGroups(ctx context.Context) ([]domain.Group, error)
	CreateGroup(ctx context.Context, in CreateGroupInput) (*domain.Group, error)
	Group(ctx context.Context, groupID string) (*domain.GroupDetail, error)
	JoinGroup(ctx context.Context, inviteCode string) (*domain.Group, error)
	PromoteAdmin(ctx context.Context, groupID, userID string) error
	RemoveMember(ctx context.Context, groupID, userID string) error
	GroupLeaderboard(ctx context.Context, groupID string) ([]domain.LeaderboardEntry, error)
}
