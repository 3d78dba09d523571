package httpapi

import (
	"context"

	"github.com/actify/actify-cli/internal/core/domain"
)

// ActiveChallenges lists the still-open daily challenges across the user's
// groups.
func (c *Client) ActiveChallenges(ctx context.Context) ([]domain.Challenge, error) {
	var challenges []domain.Challenge
	if err := c.getJSON(ctx, "/challenges/active", &challenges); err != nil {
		return nil, err
	}
	return challenges, nil
}

// FeaturedChallenges lists a server-picked sample of activities.
func (c *Client) FeaturedChallenges(ctx context.Context) ([]domain.Challenge, error) {
	var challenges []domain.Challenge
	if err := c.getJSON(ctx, "/challenges/featured", &challenges); err != nil {
		return nil, err
	}
	return challenges, nil
}

// ChallengeHistory lists past challenges with the user's completion flag.
func (c *Client) ChallengeHistory(ctx context.Context) ([]domain.Challenge, error) {
	var challenges []domain.Challenge
	if err := c.getJSON(ctx, "/challenges/history", &challenges); err != nil {
		return nil, err
	}
	return challenges, nil
}

// GlobalLeaderboard lists every user ranked by total points.
func (c *Client) GlobalLeaderboard(ctx context.Context) ([]domain.GlobalEntry, error) {
	var entries []domain.GlobalEntry
	if err := c.getJSON(ctx, "/leaderboard/global", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
