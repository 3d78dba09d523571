package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/actify/actify-cli/internal/core/domain"
	"github.com/actify/actify-cli/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory session store stub
// ---------------------------------------------------------------------------

type stubSession struct {
	sess *domain.Session
}

func (s *stubSession) Restore() (*domain.Session, error) { return s.sess, nil }
func (s *stubSession) Save(sess domain.Session) error    { s.sess = &sess; return nil }
func (s *stubSession) Clear() error                      { s.sess = nil; return nil }
func (s *stubSession) Current() *domain.Session          { return s.sess }
func (s *stubSession) IsAuthenticated() bool             { return s.sess != nil }

func authedSession() *stubSession {
	return &stubSession{sess: &domain.Session{Token: "tok-123", UserID: "u1", Username: "pat"}}
}

// ---------------------------------------------------------------------------
// Ambient headers
// ---------------------------------------------------------------------------

func TestClient_SendsBearerWhenAuthenticated(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		json.NewEncoder(w).Encode(domain.User{ID: "u1"})
	}))
	defer srv.Close()

	c := New(srv.URL, authedSession(), discardLogger)
	if _, err := c.Me(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if auth := got.Get("Authorization"); auth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want %q", auth, "Bearer tok-123")
	}
	if got.Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header missing")
	}
	if accept := got.Get("Accept"); accept != "application/json" {
		t.Errorf("Accept = %q", accept)
	}
}

func TestClient_NoBearerWhenAnonymous(t *testing.T) {
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		json.NewEncoder(w).Encode([]domain.Group{})
	}))
	defer srv.Close()

	c := New(srv.URL, &stubSession{}, discardLogger)
	if _, err := c.PublicGroups(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if auth := got.Get("Authorization"); auth != "" {
		t.Errorf("anonymous request carried Authorization %q", auth)
	}
}

// The token is read per request, so a login between calls takes effect
// without rebuilding the client.
func TestClient_PicksUpSessionChange(t *testing.T) {
	var auths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auths = append(auths, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]domain.Group{})
	}))
	defer srv.Close()

	sess := &stubSession{}
	c := New(srv.URL, sess, discardLogger)

	_, _ = c.PublicGroups(context.Background())
	_ = sess.Save(domain.Session{Token: "fresh", UserID: "u1", Username: "pat"})
	_, _ = c.PublicGroups(context.Background())

	if len(auths) != 2 || auths[0] != "" || auths[1] != "Bearer fresh" {
		t.Errorf("auth headers across login = %q", auths)
	}
}

// ---------------------------------------------------------------------------
// Encodings and paths
// ---------------------------------------------------------------------------

func TestToken_FormEncoded(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/token" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/x-www-form-urlencoded" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if r.PostForm.Get("username") != "pat" || r.PostForm.Get("password") != "s3cret" {
			t.Errorf("form = %v", r.PostForm)
		}
		json.NewEncoder(w).Encode(ports.TokenResult{AccessToken: "tok", TokenType: "bearer", UserID: "u1", Username: "pat"})
	}))
	defer srv.Close()

	c := New(srv.URL, &stubSession{}, discardLogger)
	res, err := c.Token(context.Background(), ports.Credentials{Username: "pat", Password: "s3cret"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.AccessToken != "tok" || res.UserID != "u1" {
		t.Errorf("result = %+v", res)
	}
}

func TestRegister_JSONPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/register" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatal(err)
		}
		if payload["username"] != "pat" {
			t.Errorf("username = %v", payload["username"])
		}
		// interests must be a JSON array even when empty
		if _, ok := payload["interests"].([]any); !ok {
			t.Errorf("interests = %v (%T)", payload["interests"], payload["interests"])
		}
		json.NewEncoder(w).Encode(domain.User{ID: "u1", Username: "pat"})
	}))
	defer srv.Close()

	c := New(srv.URL, &stubSession{}, discardLogger)
	user, err := c.Register(context.Background(), ports.RegisterInput{Username: "pat", Email: "p@x.io", Password: "secret1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Username != "pat" {
		t.Errorf("user = %+v", user)
	}
}

func TestJoinGroup_UpcasesInviteCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/groups/join" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if code := r.PostForm.Get("invite_code"); code != "AB12CD" {
			t.Errorf("invite_code = %q, want AB12CD", code)
		}
		json.NewEncoder(w).Encode(domain.Group{ID: "g1", Name: "Morning Crew"})
	}))
	defer srv.Close()

	c := New(srv.URL, authedSession(), discardLogger)
	group, err := c.JoinGroup(context.Background(), "  ab12cd ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if group.ID != "g1" {
		t.Errorf("group = %+v", group)
	}
}

func TestVote_BodylessPost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %q", r.Method)
		}
		if r.URL.Path != "/submissions/sub-1/vote" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(domain.Submission{ID: "sub-1", VoteCount: 3})
	}))
	defer srv.Close()

	c := New(srv.URL, authedSession(), discardLogger)
	sub, err := c.Vote(context.Background(), "sub-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.VoteCount != 3 {
		t.Errorf("vote count = %d", sub.VoteCount)
	}
}

func TestReact_FormEncodedEmoji(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/submissions/sub-1/react" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if emoji := r.PostForm.Get("emoji"); emoji != "🔥" {
			t.Errorf("emoji = %q", emoji)
		}
		json.NewEncoder(w).Encode(domain.Submission{ID: "sub-1"})
	}))
	defer srv.Close()

	c := New(srv.URL, authedSession(), discardLogger)
	if _, err := c.React(context.Background(), "sub-1", "🔥"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSelectDaily_FormEncodedGroupID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/activities/select-daily" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if gid := r.PostForm.Get("group_id"); gid != "g1" {
			t.Errorf("group_id = %q", gid)
		}
		json.NewEncoder(w).Encode(domain.Activity{ID: "a1", Title: "Cold shower"})
	}))
	defer srv.Close()

	c := New(srv.URL, authedSession(), discardLogger)
	activity, err := c.SelectDaily(context.Background(), "g1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if activity.Title != "Cold shower" {
		t.Errorf("activity = %+v", activity)
	}
}

func TestCreateSubmission_MultipartFields(t *testing.T) {
	photo := writeTempFile(t, "photo.bin", []byte("not an image"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/submissions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			t.Errorf("Content-Type = %q", r.Header.Get("Content-Type"))
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatal(err)
		}
		if aid := r.FormValue("activity_id"); aid != "a1" {
			t.Errorf("activity_id = %q", aid)
		}
		if caption := r.FormValue("caption"); caption != "made it" {
			t.Errorf("caption = %q", caption)
		}
		if _, header, err := r.FormFile("photo"); err != nil {
			t.Errorf("photo part missing: %v", err)
		} else if header.Filename != "photo.bin" {
			t.Errorf("filename = %q", header.Filename)
		}
		json.NewEncoder(w).Encode(domain.Submission{ID: "sub-1"})
	}))
	defer srv.Close()

	c := New(srv.URL, authedSession(), discardLogger)
	sub, err := c.CreateSubmission(context.Background(), ports.CreateSubmissionInput{
		ActivityID: "a1",
		Caption:    "made it",
		PhotoPath:  photo,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.ID != "sub-1" {
		t.Errorf("submission = %+v", sub)
	}
}

// ---------------------------------------------------------------------------
// Transport failure
// ---------------------------------------------------------------------------

func TestClient_TransportFailureIsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	c := New(srv.URL, &stubSession{}, discardLogger)
	_, err := c.PublicGroups(context.Background())
	if !errors.Is(err, domain.ErrUnreachable) {
		t.Fatalf("expected ErrUnreachable, got %v", err)
	}
}
