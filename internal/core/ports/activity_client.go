package ports

import (
	"context"

	"github.com/actify/actify-cli/internal/core/domain"
)

// CreateActivityInput carries the fields for a proposed activity.
type CreateActivityInput struct {
	GroupID      string
	Title        string
	Description  string
	Emoji        string
	Difficulty   string
	DeadlineDays int
}

// ActivityClient talks to the activity endpoints. SelectDaily is a single
// backend call; the selection randomness lives entirely server-side.
type ActivityClient interface {
	CreateActivity(ctx context.Context, in CreateActivityInput) (*domain.Activity, error)
	SelectDaily(ctx context.Context, groupID string) (*domain.Activity, error)
	ActivitySubmissions(ctx context.Context, activityID string) ([]domain.Submission, error)
}
