package app

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/actify/actify-cli/internal/core/domain"
	"github.com/actify/actify-cli/internal/core/view"
)

var discardLogger = zerolog.Nop()

type stubSession struct {
	sess *domain.Session
}

func (s *stubSession) Restore() (*domain.Session, error) { return s.sess, nil }
func (s *stubSession) Save(sess domain.Session) error    { s.sess = &sess; return nil }
func (s *stubSession) Clear() error                      { s.sess = nil; return nil }
func (s *stubSession) Current() *domain.Session          { return s.sess }
func (s *stubSession) IsAuthenticated() bool             { return s.sess != nil }

func newTestNavigator(session *stubSession) *Navigator {
	factory := &Factory{Session: session, Logger: discardLogger}
	return NewNavigator(session, factory, discardLogger)
}

func authedSession() *stubSession {
	return &stubSession{sess: &domain.Session{Token: "tok", UserID: "u1", Username: "pat"}}
}

func TestNavigate_GuardRedirectsAnonymous(t *testing.T) {
	nav := newTestNavigator(&stubSession{})

	m, err := nav.Navigate("/groups/g1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Path != "/login" {
		t.Errorf("Path = %q, want /login", m.Path)
	}
	if m.RedirectedFrom != "/groups/g1" {
		t.Errorf("RedirectedFrom = %q", m.RedirectedFrom)
	}
	if _, ok := m.View.(*view.Login); !ok {
		t.Errorf("View = %T, want *view.Login", m.View)
	}

	if got := nav.ConsumePending(); got != "/groups/g1" {
		t.Errorf("ConsumePending = %q, want the originally requested path", got)
	}
}

func TestNavigate_AuthenticatedPassesGuard(t *testing.T) {
	nav := newTestNavigator(authedSession())

	m, err := nav.Navigate("/groups/g1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Path != "/groups/g1" || m.RedirectedFrom != "" {
		t.Errorf("mount = %+v", m)
	}
	if m.Params["id"] != "g1" {
		t.Errorf("params = %v", m.Params)
	}
	if _, ok := m.View.(*view.GroupDetail); !ok {
		t.Errorf("View = %T, want *view.GroupDetail", m.View)
	}
}

func TestNavigate_PublicRoutesNeverRedirect(t *testing.T) {
	nav := newTestNavigator(&stubSession{})

	for _, path := range []string{"/login", "/register"} {
		m, err := nav.Navigate(path)
		if err != nil {
			t.Fatalf("Navigate(%q): %v", path, err)
		}
		if m.RedirectedFrom != "" {
			t.Errorf("Navigate(%q) redirected from %q", path, m.RedirectedFrom)
		}
	}
}

func TestNavigate_UnknownPath(t *testing.T) {
	nav := newTestNavigator(authedSession())
	if _, err := nav.Navigate("/bogus"); err == nil {
		t.Fatal("expected error for unknown path")
	}
}

func TestConsumePending_DefaultsToHome(t *testing.T) {
	nav := newTestNavigator(authedSession())
	if got := nav.ConsumePending(); got != "/" {
		t.Errorf("ConsumePending = %q, want /", got)
	}

	// Consuming twice does not replay the pending path.
	anon := newTestNavigator(&stubSession{})
	_, _ = anon.Navigate("/profile")
	if got := anon.ConsumePending(); got != "/profile" {
		t.Errorf("first ConsumePending = %q", got)
	}
	if got := anon.ConsumePending(); got != "/" {
		t.Errorf("second ConsumePending = %q, want /", got)
	}
}

func TestIsCurrent_StaleEpoch(t *testing.T) {
	nav := newTestNavigator(authedSession())

	first, err := nav.Navigate("/groups")
	if err != nil {
		t.Fatal(err)
	}
	if !nav.IsCurrent(first.Epoch) {
		t.Error("fresh mount must be current")
	}

	second, err := nav.Navigate("/profile")
	if err != nil {
		t.Fatal(err)
	}
	if nav.IsCurrent(first.Epoch) {
		t.Error("superseded mount must not be current")
	}
	if !nav.IsCurrent(second.Epoch) {
		t.Error("latest mount must be current")
	}
}

func TestLogout_ClearsSessionAndPending(t *testing.T) {
	session := &stubSession{}
	nav := newTestNavigator(session)

	_, _ = nav.Navigate("/groups") // leaves a pending path behind
	_ = session.Save(domain.Session{Token: "tok", UserID: "u1", Username: "pat"})

	if err := nav.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if session.IsAuthenticated() {
		t.Error("session must be cleared")
	}
	if got := nav.ConsumePending(); got != "/" {
		t.Errorf("pending = %q after logout, want /", got)
	}
}
