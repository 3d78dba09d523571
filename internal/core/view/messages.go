package view

import (
	"errors"

	"github.com/actify/actify-cli/internal/core/domain"
)

// Message returns the user-facing text for err. Known business-rule
// conflicts get their own phrasing so users can tell, for example, "you
// already submitted" apart from "this isn't today's challenge"; anything
// else falls back to the server's detail or a generic line.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, domain.ErrAlreadySubmitted):
		return "You already submitted a photo for this challenge."
	case errors.Is(err, domain.ErrActivityNotSelected):
		return "This activity is not today's challenge."
	case errors.Is(err, domain.ErrNoPendingActivities):
		return "No pending activities to pick from. Propose one first."
	case errors.Is(err, domain.ErrInvalidInviteCode):
		return "That invite code doesn't match any group."
	case errors.Is(err, domain.ErrAlreadyMember):
		return "You are already a member of that group."
	case errors.Is(err, domain.ErrGroupFull):
		return "That group is already full."
	case errors.Is(err, domain.ErrLastAdmin):
		return "The last admin of a group cannot be removed."
	case errors.Is(err, domain.ErrAlreadyAdmin):
		return "That member is already an admin."
	case errors.Is(err, domain.ErrNotMember):
		return "That user is not a member of this group."
	case errors.Is(err, domain.ErrUsernameTaken):
		return "That username is already registered."
	case errors.Is(err, domain.ErrEmailTaken):
		return "That email is already registered."
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "Incorrect username or password."
	case errors.Is(err, domain.ErrSessionExpired):
		return "Your session has expired. Please log in again."
	case errors.Is(err, domain.ErrForbidden):
		return "You don't have permission to do that."
	case errors.Is(err, domain.ErrUnreachable):
		return "Could not reach the server. Check your connection and try again."
	}

	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return "Something went wrong. Please try again."
}
