package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/actify/actify-cli/internal/core/domain"
)

const maxErrorBody = 64 << 10

// decodeError turns a non-2xx response into a domain error. The backend's
// `detail` message is preserved as wrapped text so the UI can show it.
func decodeError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	detail := extractDetail(body)
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}
	if sentinel := classify(resp.StatusCode, detail); sentinel != nil {
		return fmt.Errorf("%w: %s", sentinel, detail)
	}
	return &domain.APIError{Status: resp.StatusCode, Detail: detail}
}

// extractDetail pulls a human-readable message out of the backend's error
// envelope. FastAPI uses {"detail": ...} where detail is usually a string
// but may be a structured list for request-validation failures; `error` and
// `message` are accepted as fallbacks for other upstreams.
func extractDetail(body []byte) string {
	var env struct {
		Detail  any    `json:"detail"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &env) != nil {
		return ""
	}
	if s, ok := env.Detail.(string); ok {
		return s
	}
	if env.Error != "" {
		return env.Error
	}
	if env.Message != "" {
		return env.Message
	}
	if env.Detail != nil {
		raw, err := json.Marshal(env.Detail)
		if err == nil {
			return string(raw)
		}
	}
	return ""
}

// classify maps status plus detail text onto the client's sentinel errors.
// The detail phrases mirror the backend's known failure modes; anything
// unrecognized falls through to a generic APIError.
func classify(status int, detail string) error {
	switch status {
	case http.StatusUnauthorized:
		if strings.Contains(strings.ToLower(detail), "username or password") {
			return domain.ErrInvalidCredentials
		}
		return domain.ErrSessionExpired
	case http.StatusForbidden:
		return domain.ErrForbidden
	}

	lower := strings.ToLower(detail)
	switch status {
	case http.StatusNotFound:
		switch {
		case strings.Contains(lower, "invite code"):
			return domain.ErrInvalidInviteCode
		case strings.Contains(lower, "group"):
			return domain.ErrGroupNotFound
		case strings.Contains(lower, "activity"):
			return domain.ErrActivityNotFound
		case strings.Contains(lower, "submission"):
			return domain.ErrSubmissionNotFound
		case strings.Contains(lower, "notification"):
			return domain.ErrNotificationNotFound
		}
	case http.StatusBadRequest, http.StatusConflict:
		switch {
		case strings.Contains(lower, "already submitted"):
			return domain.ErrAlreadySubmitted
		case strings.Contains(lower, "not been selected"):
			return domain.ErrActivityNotSelected
		case strings.Contains(lower, "is full"):
			return domain.ErrGroupFull
		case strings.Contains(lower, "already a member"):
			return domain.ErrAlreadyMember
		case strings.Contains(lower, "no activities"):
			return domain.ErrNoPendingActivities
		case strings.Contains(lower, "username already"):
			return domain.ErrUsernameTaken
		case strings.Contains(lower, "email already"):
			return domain.ErrEmailTaken
		case strings.Contains(lower, "last admin"):
			return domain.ErrLastAdmin
		case strings.Contains(lower, "already an admin"):
			return domain.ErrAlreadyAdmin
		case strings.Contains(lower, "not a member"):
			return domain.ErrNotMember
		}
	}
	return nil
}
