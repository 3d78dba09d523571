package view

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/actify/actify-cli/internal/core/domain"
	"github.com/actify/actify-cli/internal/core/ports"
)

// Notifications lists the user's notifications and lets them be marked
// read, one at a time or all at once.
type Notifications struct {
	notifications ports.NotificationClient
	logger        zerolog.Logger

	status Status
	err    error

	Items  []domain.Notification
	Notice Notice
}

func NewNotifications(notifications ports.NotificationClient, logger zerolog.Logger) *Notifications {
	return &Notifications{notifications: notifications, logger: logger}
}

func (v *Notifications) Load(ctx context.Context) {
	v.status = StatusLoading
	v.err = nil

	items, err := v.notifications.Notifications(ctx)
	if err != nil {
		v.status = StatusError
		v.err = err
		return
	}

	v.Items = items
	v.status = StatusReady
}

func (v *Notifications) refresh(ctx context.Context) error {
	items, err := v.notifications.Notifications(ctx)
	if err != nil {
		return err
	}
	v.Items = items
	return nil
}

// Unread counts the notifications not yet marked read.
func (v *Notifications) Unread() int {
	count := 0
	for _, n := range v.Items {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkRead flags one notification read, then re-fetches the list.
func (v *Notifications) MarkRead(ctx context.Context, notificationID string) {
	if err := v.notifications.MarkRead(ctx, notificationID); err != nil {
		v.Notice = errorNotice(Message(err))
		return
	}
	if err := v.refresh(ctx); err != nil {
		v.Notice = errorNotice(Message(err))
	}
}

// MarkAllRead flags everything read, then re-fetches the list.
func (v *Notifications) MarkAllRead(ctx context.Context) {
	if err := v.notifications.MarkAllRead(ctx); err != nil {
		v.Notice = errorNotice(Message(err))
		return
	}
	if err := v.refresh(ctx); err != nil {
		v.Notice = errorNotice(Message(err))
		return
	}
	v.Notice = successNotice("All notifications marked read.")
}

func (v *Notifications) Status() Status { return v.status }
func (v *Notifications) Err() error     { return v.err }
