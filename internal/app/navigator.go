package app

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/actify/actify-cli/internal/core/ports"
)

// Mounted is the outcome of one navigation: the built view, the path it
// actually landed on (after any guard redirect), and the epoch stamping
// this mount. Results from loads belonging to an older epoch must not be
// rendered; the views themselves are abandoned, not cancelled.
type Mounted struct {
	View           any
	Path           string
	Route          Route
	Params         map[string]string
	Epoch          int
	RedirectedFrom string
}

// Navigator applies the route guard and tracks the current mount. The only
// legal state transitions are Anonymous→Authenticated via login and
// Authenticated→Anonymous via logout (or a failed restore at startup).
type Navigator struct {
	session ports.SessionStore
	factory *Factory
	logger  zerolog.Logger

	mu      sync.Mutex
	epoch   int
	pending string
}

func NewNavigator(session ports.SessionStore, factory *Factory, logger zerolog.Logger) *Navigator {
	return &Navigator{session: session, factory: factory, logger: logger}
}

// Navigate resolves path, redirecting anonymous users away from protected
// views, and mounts the resulting view. The originally requested path is
// remembered so login can return the user there.
func (n *Navigator) Navigate(path string) (*Mounted, error) {
	rt, params, ok := Lookup(path)
	if !ok {
		return nil, fmt.Errorf("no view for %q", path)
	}

	redirectedFrom := ""
	if rt.Protected && !n.session.IsAuthenticated() {
		n.mu.Lock()
		n.pending = path
		n.mu.Unlock()

		redirectedFrom = path
		path = "/login"
		rt, params, _ = Lookup(path)
		n.logger.Debug().Str("from", redirectedFrom).Msg("redirected to login")
	}

	v := n.factory.Build(rt, params)
	if v == nil {
		return nil, fmt.Errorf("no view for route %q", rt.Name)
	}

	n.mu.Lock()
	n.epoch++
	epoch := n.epoch
	n.mu.Unlock()

	return &Mounted{
		View:           v,
		Path:           normalize(path),
		Route:          rt,
		Params:         params,
		Epoch:          epoch,
		RedirectedFrom: redirectedFrom,
	}, nil
}

// IsCurrent reports whether epoch still identifies the latest navigation.
func (n *Navigator) IsCurrent(epoch int) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return epoch == n.epoch
}

// ConsumePending returns the path requested before a login redirect, or
// "/" when there is none, and forgets it.
func (n *Navigator) ConsumePending() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	path := n.pending
	n.pending = ""
	if path == "" {
		path = "/"
	}
	return path
}

// Logout clears the session; the caller navigates back to the login view.
func (n *Navigator) Logout() error {
	n.mu.Lock()
	n.pending = ""
	n.mu.Unlock()
	return n.session.Clear()
}
