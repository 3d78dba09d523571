package httpapi

import (
	"context"
	"net/url"
	"strconv"

	"github.com/actify/actify-cli/internal/core/domain"
	"github.com/actify/actify-cli/internal/core/ports"
)

// Create proposes a new activity for a group's pending pool. The endpoint
// takes form fields rather than JSON.
func (c *Client) CreateActivity(ctx context.Context, in ports.CreateActivityInput) (*domain.Activity, error) {
	form := url.Values{
		"title":    {in.Title},
		"group_id": {in.GroupID},
	}
	if in.Description != "" {
		form.Set("description", in.Description)
	}
	if in.Emoji != "" {
		form.Set("emoji", in.Emoji)
	}
	if in.Difficulty != "" {
		form.Set("difficulty", in.Difficulty)
	}
	if in.DeadlineDays > 0 {
		form.Set("deadline_days", strconv.Itoa(in.DeadlineDays))
	}

	var activity domain.Activity
	if err := c.postForm(ctx, "/activities", form, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

// SelectDaily asks the backend to pick today's activity for the group. The
// selection is random server-side; the client never replicates it.
func (c *Client) SelectDaily(ctx context.Context, groupID string) (*domain.Activity, error) {
	form := url.Values{"group_id": {groupID}}

	var activity domain.Activity
	if err := c.postForm(ctx, "/activities/select-daily", form, &activity); err != nil {
		return nil, err
	}
	return &activity, nil
}

// Submissions lists an activity's submissions, vote counts included,
// ordered by votes server-side.
func (c *Client) ActivitySubmissions(ctx context.Context, activityID string) ([]domain.Submission, error) {
	var subs []domain.Submission
	if err := c.getJSON(ctx, "/activities/"+url.PathEscape(activityID)+"/submissions", &subs); err != nil {
		return nil, err
	}
	return subs, nil
}
