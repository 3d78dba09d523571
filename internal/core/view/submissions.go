package view

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/actify/actify-cli/internal/core/domain"
	"github.com/actify/actify-cli/internal/core/ports"
)

// Submissions shows one activity's photo submissions. Vote counts always
// come from the post-mutation re-fetch, never from a local increment, so
// the display cannot drift from server-side scoring.
type Submissions struct {
	activities  ports.ActivityClient
	submissions ports.SubmissionClient
	logger      zerolog.Logger

	ActivityID    string
	CurrentUserID string

	status Status
	err    error

	Items  []domain.Submission
	Notice Notice

	// inFlight guards against rapid double votes/reactions on the same
	// submission while a toggle is outstanding.
	inFlight map[string]bool
}

func NewSubmissions(activities ports.ActivityClient, submissions ports.SubmissionClient, activityID, currentUserID string, logger zerolog.Logger) *Submissions {
	return &Submissions{
		activities:    activities,
		submissions:   submissions,
		ActivityID:    activityID,
		CurrentUserID: currentUserID,
		logger:        logger,
		inFlight:      make(map[string]bool),
	}
}

func (v *Submissions) Load(ctx context.Context) {
	v.status = StatusLoading
	v.err = nil

	items, err := v.activities.ActivitySubmissions(ctx, v.ActivityID)
	if err != nil {
		v.status = StatusError
		v.err = err
		return
	}

	v.Items = items
	v.status = StatusReady
}

func (v *Submissions) refresh(ctx context.Context) error {
	items, err := v.activities.ActivitySubmissions(ctx, v.ActivityID)
	if err != nil {
		return err
	}
	v.Items = items
	return nil
}

// Submit posts photo evidence for this activity. The backend's "already
// submitted" and "not today's challenge" rejections surface as distinct
// messages (see Message).
func (v *Submissions) Submit(ctx context.Context, photoPath, caption string, lat, lng *float64) {
	_, err := v.submissions.CreateSubmission(ctx, ports.CreateSubmissionInput{
		ActivityID: v.ActivityID,
		Caption:    caption,
		PhotoPath:  photoPath,
		Latitude:   lat,
		Longitude:  lng,
	})
	if err != nil {
		v.Notice = errorNotice(Message(err))
		return
	}
	if err := v.refresh(ctx); err != nil {
		v.Notice = errorNotice(Message(err))
		return
	}
	v.Notice = successNotice("Photo submitted.")
}

// Vote toggles the user's vote on a submission. A vote for a submission
// with a toggle still outstanding is dropped rather than raced.
func (v *Submissions) Vote(ctx context.Context, submissionID string) {
	if v.inFlight[submissionID] {
		v.Notice = errorNotice("A vote for this submission is already in progress.")
		return
	}
	v.inFlight[submissionID] = true
	defer delete(v.inFlight, submissionID)

	if _, err := v.submissions.Vote(ctx, submissionID); err != nil {
		v.Notice = errorNotice(Message(err))
		return
	}
	if err := v.refresh(ctx); err != nil {
		v.Notice = errorNotice(Message(err))
		return
	}
	v.Notice = successNotice("Vote recorded.")
}

// React toggles an emoji reaction on a submission.
func (v *Submissions) React(ctx context.Context, submissionID, emoji string) {
	if v.inFlight[submissionID] {
		v.Notice = errorNotice("An update for this submission is already in progress.")
		return
	}
	v.inFlight[submissionID] = true
	defer delete(v.inFlight, submissionID)

	if _, err := v.submissions.React(ctx, submissionID, emoji); err != nil {
		v.Notice = errorNotice(Message(err))
		return
	}
	if err := v.refresh(ctx); err != nil {
		v.Notice = errorNotice(Message(err))
		return
	}
	v.Notice = successNotice("Reaction recorded.")
}

func (v *Submissions) Status() Status { return v.status }
func (v *Submissions) Err() error     { return v.err }
