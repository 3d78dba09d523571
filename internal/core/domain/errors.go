package domain

import (
	"errors"
	"fmt"
)

// Transport and session failures.
var ErrUnreachable = errors.New("server unreachable")
var ErrSessionExpired = errors.New("session expired")
var ErrIncompleteSession = errors.New("incomplete session")
var ErrForbidden = errors.New("access forbidden")
var ErrInvalidCredentials = errors.New("invalid credentials")

// Missing resources.
var ErrGroupNotFound = errors.New("group not found")
var ErrActivityNotFound = errors.New("activity not found")
var ErrSubmissionNotFound = errors.New("submission not found")
var ErrNotificationNotFound = errors.New("notification not found")

// Business-rule conflicts the UI must tell apart.
var ErrInvalidInviteCode = errors.New("invalid invite code")
var ErrAlreadyMember = errors.New("already a member")
var ErrGroupFull = errors.New("group is full")
var ErrNotMember = errors.New("not a group member")
var ErrAlreadyAdmin = errors.New("already an admin")
var ErrLastAdmin = errors.New("cannot remove the last admin")
var ErrAlreadySubmitted = errors.New("already submitted")
var ErrActivityNotSelected = errors.New("activity not selected for today")
var ErrNoPendingActivities = errors.New("no pending activities")
var ErrUsernameTaken = errors.New("username already registered")
var ErrEmailTaken = errors.New("email already registered")

// APIError carries a backend error that does not map onto a known sentinel.
// Detail is the server's human-readable message when one was present.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Detail)
}
