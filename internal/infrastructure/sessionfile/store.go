// Package sessionfile persists the login session to a single JSON file,
// the terminal-client analog of the browser's local storage. The record is
// replaced wholesale on every write, so readers see either the previous
// session or the new one, never a mix.
package sessionfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/actify/actify-cli/internal/core/domain"
	"github.com/actify/actify-cli/internal/core/ports"
)

var _ ports.SessionStore = (*Store)(nil)

// Store implements ports.SessionStore on top of a local file.
type Store struct {
	path   string
	logger zerolog.Logger

	mu       sync.RWMutex
	current  *domain.Session
	restored bool
}

func New(path string, logger zerolog.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Restore reads the persisted session. It runs at most once per process;
// later calls return the already-restored state. Anything short of a
// complete, unexpired record means anonymous.
func (s *Store) Restore() (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.restored {
		return s.snapshot(), nil
	}
	s.restored = true

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var sess domain.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("session file unreadable, starting anonymous")
		return nil, nil
	}
	if !sess.Complete() {
		s.logger.Warn().Str("path", s.path).Msg("partial session record, starting anonymous")
		return nil, nil
	}
	if tokenExpired(sess.Token) {
		s.logger.Info().Str("username", sess.Username).Msg("stored token expired, starting anonymous")
		return nil, nil
	}

	s.current = &sess
	return s.snapshot(), nil
}

// Save persists the session and makes it the current one. The write goes
// to a temp file in the same directory and is renamed into place, so a
// crash mid-write never leaves a partial record.
func (s *Store) Save(sess domain.Session) error {
	if !sess.Complete() {
		return domain.ErrIncompleteSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write session: %w", err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("commit session: %w", err)
	}

	s.current = &sess
	s.restored = true
	return nil
}

// Clear forgets the session in memory and on disk.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// Current returns a copy of the held session, or nil when anonymous.
func (s *Store) Current() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// IsAuthenticated reports whether a complete session is held.
func (s *Store) IsAuthenticated() bool {
	return s.Current() != nil
}

func (s *Store) snapshot() *domain.Session {
	if s.current == nil {
		return nil
	}
	copy := *s.current
	return &copy
}

// tokenExpired reports whether the token is a JWT whose exp claim has
// passed. Tokens are opaque to the client otherwise: anything that does not
// parse is kept and left for the server's 401 to reject.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
