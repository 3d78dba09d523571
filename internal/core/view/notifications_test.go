package view

import (
	"context"
	"testing"

	"github.com/actify/actify-cli/internal/core/domain"
)

func TestNotifications_Unread(t *testing.T) {
	stub := &stubNotifications{items: []domain.Notification{
		{ID: "n1"},
		{ID: "n2", Read: true},
		{ID: "n3"},
	}}
	v := NewNotifications(stub, discardLogger)
	v.Load(context.Background())

	requireReady(t, v)
	if got := v.Unread(); got != 2 {
		t.Errorf("Unread = %d, want 2", got)
	}
}

func TestNotifications_MarkReadRefreshes(t *testing.T) {
	stub := &stubNotifications{items: []domain.Notification{{ID: "n1"}}}
	v := NewNotifications(stub, discardLogger)
	v.Load(context.Background())

	v.MarkRead(context.Background(), "n1")

	if len(stub.readIDs) != 1 || stub.readIDs[0] != "n1" {
		t.Errorf("readIDs = %v", stub.readIDs)
	}
	if v.Unread() != 0 {
		t.Errorf("Unread = %d after mark-read", v.Unread())
	}
}

func TestNotifications_MarkAllRead(t *testing.T) {
	stub := &stubNotifications{items: []domain.Notification{{ID: "n1"}, {ID: "n2"}}}
	v := NewNotifications(stub, discardLogger)
	v.Load(context.Background())

	v.MarkAllRead(context.Background())

	if stub.readAll != 1 {
		t.Errorf("readAll = %d", stub.readAll)
	}
	if v.Unread() != 0 {
		t.Errorf("Unread = %d after mark-all-read", v.Unread())
	}
}

func TestNotifications_MarkReadFailure(t *testing.T) {
	stub := &stubNotifications{
		items:       []domain.Notification{{ID: "n1"}},
		markReadErr: domain.ErrNotificationNotFound,
	}
	v := NewNotifications(stub, discardLogger)
	v.Load(context.Background())

	v.MarkRead(context.Background(), "n-gone")

	requireErrorNotice(t, v.Notice)
	if v.Unread() != 1 {
		t.Errorf("Unread = %d, want unchanged 1", v.Unread())
	}
}
