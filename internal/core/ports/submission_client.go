package ports

import (
	"context"

	"github.com/actify/actify-cli/internal/core/domain"
)

// CreateSubmissionInput carries a photo submission for today's challenge.
type CreateSubmissionInput struct {
	ActivityID string
	Caption    string
	PhotoPath  string
	Latitude   *float64
	Longitude  *float64
}

// SubmissionClient talks to the submission endpoints. Vote and React are
// toggles per (submission, user) pair; callers must re-fetch the submission
// list afterwards rather than trust the returned counts.
type SubmissionClient interface {
	CreateSubmission(ctx context.Context, in CreateSubmissionInput) (*domain.Submission, error)
	Vote(ctx context.Context, submissionID string) (*domain.Submission, error)
	React(ctx context.Context, submissionID, emoji string) (*domain.Submission, error)
}
