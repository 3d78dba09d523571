package ports

import (
	"context"

	"github.com/actify/actify-cli/internal/core/domain"
)

// ChallengeClient reads the cross-group challenge feeds.
type ChallengeClient interface {
	ActiveChallenges(ctx context.Context) ([]domain.Challenge, error)
	FeaturedChallenges(ctx context.Context) ([]domain.Challenge, error)
	ChallengeHistory(ctx context.Context) ([]domain.Challenge, error)
}

// LeaderboardClient reads the global (cross-group) leaderboard.
type LeaderboardClient interface {
	GlobalLeaderboard(ctx context.Context) ([]domain.GlobalEntry, error)
}
