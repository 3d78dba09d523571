package view

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/actify/actify-cli/internal/core/domain"
	"github.com/actify/actify-cli/internal/core/ports"
)

// Leaderboard shows one group's ranking. Scores, streaks, ranks and badges
// are all derived server-side; the view is read-only.
type Leaderboard struct {
	groups ports.GroupClient
	logger zerolog.Logger

	GroupID string

	status Status
	err    error

	Entries []domain.LeaderboardEntry
}

func NewLeaderboard(groups ports.GroupClient, groupID string, logger zerolog.Logger) *Leaderboard {
	return &Leaderboard{groups: groups, GroupID: groupID, logger: logger}
}

func (v *Leaderboard) Load(ctx context.Context) {
	v.status = StatusLoading
	v.err = nil

	entries, err := v.groups.GroupLeaderboard(ctx, v.GroupID)
	if err != nil {
		v.status = StatusError
		v.err = err
		return
	}

	v.Entries = entries
	v.status = StatusReady
}

func (v *Leaderboard) Status() Status { return v.status }
func (v *Leaderboard) Err() error     { return v.err }

// GlobalLeaderboard shows every user ranked by total points across groups.
type GlobalLeaderboard struct {
	global ports.LeaderboardClient
	logger zerolog.Logger

	status Status
	err    error

	Entries []domain.GlobalEntry
}

func NewGlobalLeaderboard(global ports.LeaderboardClient, logger zerolog.Logger) *GlobalLeaderboard {
	return &GlobalLeaderboard{global: global, logger: logger}
}

func (v *GlobalLeaderboard) Load(ctx context.Context) {
	v.status = StatusLoading
	v.err = nil

	entries, err := v.global.GlobalLeaderboard(ctx)
	if err != nil {
		v.status = StatusError
		v.err = err
		return
	}

	v.Entries = entries
	v.status = StatusReady
}

func (v *GlobalLeaderboard) Status() Status { return v.status }
func (v *GlobalLeaderboard) Err() error     { return v.err }
