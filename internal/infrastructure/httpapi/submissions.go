package httpapi

import (
	"context"
	"net/url"
	"strconv"

	"github.com/actify/actify-cli/internal/core/domain"
	"github.com/actify/actify-cli/internal/core/ports"
)

// CreateSubmission posts photo evidence against today's challenge as a
// multipart upload. The photo is downscaled client-side when oversized.
func (c *Client) CreateSubmission(ctx context.Context, in ports.CreateSubmissionInput) (*domain.Submission, error) {
	data, name, err := preparePhoto(in.PhotoPath)
	if err != nil {
		return nil, err
	}

	m := newMultipartBody()
	m.field("activity_id", in.ActivityID)
	if in.Caption != "" {
		m.field("caption", in.Caption)
	}
	if in.Latitude != nil && in.Longitude != nil {
		m.field("latitude", strconv.FormatFloat(*in.Latitude, 'f', -1, 64))
		m.field("longitude", strconv.FormatFloat(*in.Longitude, 'f', -1, 64))
	}
	m.file("photo", name, data)

	var sub domain.Submission
	if err := c.submitMultipart(ctx, "POST", "/submissions", m, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// Vote toggles the current user's vote on a submission. The returned
// document is the server's post-toggle state, but callers re-fetch the
// full list for authoritative counts.
func (c *Client) Vote(ctx context.Context, submissionID string) (*domain.Submission, error) {
	var sub domain.Submission
	if err := c.post(ctx, "/submissions/"+url.PathEscape(submissionID)+"/vote", &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// React toggles an emoji reaction on a submission.
func (c *Client) React(ctx context.Context, submissionID, emoji string) (*domain.Submission, error) {
	form := url.Values{"emoji": {emoji}}

	var sub domain.Submission
	if err := c.postForm(ctx, "/submissions/"+url.PathEscape(submissionID)+"/react", form, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}
