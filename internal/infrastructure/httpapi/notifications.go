package httpapi

import (
	"context"
	"net/url"

	"github.com/actify/actify-cli/internal/core/domain"
)

// Notifications lists the current user's most recent notifications.
func (c *Client) Notifications(ctx context.Context) ([]domain.Notification, error) {
	var notifications []domain.Notification
	if err := c.getJSON(ctx, "/notifications", &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead flags one notification as read.
func (c *Client) MarkRead(ctx context.Context, notificationID string) error {
	return c.post(ctx, "/notifications/mark-read/"+url.PathEscape(notificationID), nil)
}

// MarkAllRead flags every unread notification as read.
func (c *Client) MarkAllRead(ctx context.Context) error {
	return c.post(ctx, "/notifications/mark-all-read", nil)
}
