package ports

import "github.com/actify/actify-cli/internal/core/domain"

// SessionStore is the single source of truth for "who is logged in",
// backed by durable local storage.
type SessionStore interface {
	// Restore loads the persisted session once per process. A missing,
	// partial, or expired record yields a nil session and no error.
	Restore() (*domain.Session, error)
	// Save persists the session atomically; a concurrent reader never
	// observes a partial record.
	Save(domain.Session) error
	// Clear removes the persisted session. Clearing an absent session
	// succeeds.
	Clear() error
	// Current returns the in-memory session, or nil when anonymous.
	Current() *domain.Session
	// IsAuthenticated is true exactly when a complete session is held.
	IsAuthenticated() bool
}
