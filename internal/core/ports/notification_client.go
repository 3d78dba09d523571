package ports

import (
	"context"

	"github.com/actify/actify-cli/internal/core/domain"
)

// NotificationClient talks to the notification endpoints.
type NotificationClient interface {
	Notifications(ctx context.Context) ([]domain.Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
	MarkAllRead(ctx context.Context) error
}
