package view

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/actify/actify-cli/internal/core/domain"
	"github.com/actify/actify-cli/internal/core/form"
	"github.com/actify/actify-cli/internal/core/ports"
)

// GroupDetail is the single-group view: members, today's challenge, the
// pending activity pool, and the admin actions. Every action re-fetches the
// group before the displayed state changes, because selections, promotions
// and removals all have server-side side effects the client cannot predict.
type GroupDetail struct {
	groups     ports.GroupClient
	activities ports.ActivityClient
	logger     zerolog.Logger

	GroupID       string
	CurrentUserID string

	status Status
	err    error

	Group  *domain.GroupDetail
	Notice Notice
}

func NewGroupDetail(groups ports.GroupClient, activities ports.ActivityClient, groupID, currentUserID string, logger zerolog.Logger) *GroupDetail {
	return &GroupDetail{
		groups:        groups,
		activities:    activities,
		GroupID:       groupID,
		CurrentUserID: currentUserID,
		logger:        logger,
	}
}

func (v *GroupDetail) Load(ctx context.Context) {
	v.status = StatusLoading
	v.err = nil

	group, err := v.groups.Group(ctx, v.GroupID)
	if err != nil {
		v.status = StatusError
		v.err = err
		return
	}

	v.Group = group
	v.status = StatusReady
}

// refresh re-fetches the group after a mutation. The previously displayed
// snapshot stays in place when the re-fetch fails.
func (v *GroupDetail) refresh(ctx context.Context) error {
	group, err := v.groups.Group(ctx, v.GroupID)
	if err != nil {
		return err
	}
	v.Group = group
	return nil
}

// CanAdminister reports whether admin controls should be rendered. This is
// a UX convenience only; the server enforces authorization.
func (v *GroupDetail) CanAdminister() bool {
	return v.Group != nil && v.Group.IsAdmin(v.CurrentUserID)
}

// Propose adds an activity to the group's pending pool.
func (v *GroupDetail) Propose(ctx context.Context, f form.Activity) {
	if err := form.Validate(f); err != nil {
		v.Notice = errorNotice(err.Error())
		return
	}

	_, err := v.activities.CreateActivity(ctx, ports.CreateActivityInput{
		GroupID:      v.GroupID,
		Title:        f.Title,
		Description:  f.Description,
		Emoji:        f.Emoji,
		Difficulty:   f.Difficulty,
		DeadlineDays: f.DeadlineDays,
	})
	if err != nil {
		v.Notice = errorNotice(Message(err))
		return
	}
	if err := v.refresh(ctx); err != nil {
		v.Notice = errorNotice(Message(err))
		return
	}
	v.Notice = successNotice("Activity proposed.")
}

// SelectDaily asks the backend to pick today's challenge. The choice is
// made entirely server-side.
func (v *GroupDetail) SelectDaily(ctx context.Context) {
	activity, err := v.activities.SelectDaily(ctx, v.GroupID)
	if err != nil {
		v.Notice = errorNotice(Message(err))
		return
	}
	if err := v.refresh(ctx); err != nil {
		v.Notice = errorNotice(Message(err))
		return
	}
	v.Notice = successNotice("Today's challenge: " + activity.Title)
}

// Promote grants admin rights to a member, then re-fetches the group.
func (v *GroupDetail) Promote(ctx context.Context, userID string) {
	if err := v.groups.PromoteAdmin(ctx, v.GroupID, userID); err != nil {
		v.Notice = errorNotice(Message(err))
		return
	}
	if err := v.refresh(ctx); err != nil {
		v.Notice = errorNotice(Message(err))
		return
	}
	v.Notice = successNotice("Member promoted to admin.")
}

// Remove removes a member from the group, then re-fetches it.
func (v *GroupDetail) Remove(ctx context.Context, userID string) {
	if err := v.groups.RemoveMember(ctx, v.GroupID, userID); err != nil {
		v.Notice = errorNotice(Message(err))
		return
	}
	if err := v.refresh(ctx); err != nil {
		v.Notice = errorNotice(Message(err))
		return
	}
	v.Notice = successNotice("Member removed.")
}

func (v *GroupDetail) Status() Status { return v.status }
func (v *GroupDetail) Err() error     { return v.err }
