package view

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/actify/actify-cli/internal/core/domain"
	"github.com/actify/actify-cli/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory client stubs
// ---------------------------------------------------------------------------

type stubUsers struct {
	me           *domain.User
	meErr        error
	meCalls      int
	updated      *domain.User
	updateErr    error
	lastIn       ports.ProfileUpdateInput
	interests    []domain.Interest
	interestsErr error
}

func (s *stubUsers) Me(context.Context) (*domain.User, error) {
	s.meCalls++
	return s.me, s.meErr
}

func (s *stubUsers) UpdateProfile(_ context.Context, in ports.ProfileUpdateInput) (*domain.User, error) {
	s.lastIn = in
	return s.updated, s.updateErr
}

func (s *stubUsers) Interests(context.Context) ([]domain.Interest, error) {
	return s.interests, s.interestsErr
}

type stubChallenges struct {
	active      []domain.Challenge
	activeErr   error
	featured    []domain.Challenge
	featuredErr error
	history     []domain.Challenge
	historyErr  error
}

func (s *stubChallenges) ActiveChallenges(context.Context) ([]domain.Challenge, error) {
	return s.active, s.activeErr
}

func (s *stubChallenges) FeaturedChallenges(context.Context) ([]domain.Challenge, error) {
	return s.featured, s.featuredErr
}

func (s *stubChallenges) ChallengeHistory(context.Context) ([]domain.Challenge, error) {
	return s.history, s.historyErr
}

type stubNotifications struct {
	items       []domain.Notification
	itemsErr    error
	readIDs     []string
	readAll     int
	markReadErr error
}

func (s *stubNotifications) Notifications(context.Context) ([]domain.Notification, error) {
	return s.items, s.itemsErr
}

func (s *stubNotifications) MarkRead(_ context.Context, id string) error {
	if s.markReadErr != nil {
		return s.markReadErr
	}
	s.readIDs = append(s.readIDs, id)
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Read = true
		}
	}
	return nil
}

func (s *stubNotifications) MarkAllRead(context.Context) error {
	s.readAll++
	for i := range s.items {
		s.items[i].Read = true
	}
	return nil
}

type stubGroups struct {
	mine         []domain.Group
	mineErr      error
	mineCalls    int
	public       []domain.Group
	publicErr    error
	detail       *domain.GroupDetail
	detailErr    error
	detailCalls  int
	created      *domain.Group
	createErr    error
	joined       *domain.Group
	joinErr      error
	lastJoinCode string
	promoted     []string
	promoteErr   error
	removed      []string
	removeErr    error
	board        []domain.LeaderboardEntry
	boardErr     error
}

func (s *stubGroups) MyGroups(context.Context) ([]domain.Group, error) {
	s.mineCalls++
	return s.mine, s.mineErr
}

func (s *stubGroups) PublicGroups(context.Context) ([]domain.Group, error) {
	return s.public, s.publicErr
}

func (s *stubGroups) CreateGroup(_ context.Context, in ports.CreateGroupInput) (*domain.Group, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func (s *stubGroups) Group(context.Context, string) (*domain.GroupDetail, error) {
	s.detailCalls++
	return s.detail, s.detailErr
}

func (s *stubGroups) JoinGroup(_ context.Context, code string) (*domain.Group, error) {
	s.lastJoinCode = code
	if s.joinErr != nil {
		return nil, s.joinErr
	}
	return s.joined, nil
}

func (s *stubGroups) PromoteAdmin(_ context.Context, _, userID string) error {
	if s.promoteErr != nil {
		return s.promoteErr
	}
	s.promoted = append(s.promoted, userID)
	return nil
}

func (s *stubGroups) RemoveMember(_ context.Context, _, userID string) error {
	if s.removeErr != nil {
		return s.removeErr
	}
	s.removed = append(s.removed, userID)
	return nil
}

func (s *stubGroups) GroupLeaderboard(context.Context, string) ([]domain.LeaderboardEntry, error) {
	return s.board, s.boardErr
}

type stubActivities struct {
	created    *domain.Activity
	createErr  error
	selected   *domain.Activity
	selectErr  error
	subs       []domain.Submission
	subsErr    error
	subsCalls  int
	lastCreate ports.CreateActivityInput
}

func (s *stubActivities) CreateActivity(_ context.Context, in ports.CreateActivityInput) (*domain.Activity, error) {
	s.lastCreate = in
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func (s *stubActivities) SelectDaily(context.Context, string) (*domain.Activity, error) {
	if s.selectErr != nil {
		return nil, s.selectErr
	}
	return s.selected, nil
}

func (s *stubActivities) ActivitySubmissions(context.Context, string) ([]domain.Submission, error) {
	s.subsCalls++
	return s.subs, s.subsErr
}

type stubSubmissions struct {
	createErr error
	created   *domain.Submission
	voteFn    func(id string) (*domain.Submission, error)
	voteCalls int
	reactErr  error
}

func (s *stubSubmissions) CreateSubmission(_ context.Context, in ports.CreateSubmissionInput) (*domain.Submission, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func (s *stubSubmissions) Vote(_ context.Context, id string) (*domain.Submission, error) {
	s.voteCalls++
	if s.voteFn != nil {
		return s.voteFn(id)
	}
	return &domain.Submission{ID: id}, nil
}

func (s *stubSubmissions) React(_ context.Context, id, _ string) (*domain.Submission, error) {
	if s.reactErr != nil {
		return nil, s.reactErr
	}
	return &domain.Submission{ID: id}, nil
}

type stubAuth struct {
	token     *ports.TokenResult
	tokenErr  error
	lastCreds ports.Credentials
	user      *domain.User
	regErr    error
	lastReg   ports.RegisterInput
}

func (s *stubAuth) Register(_ context.Context, in ports.RegisterInput) (*domain.User, error) {
	s.lastReg = in
	if s.regErr != nil {
		return nil, s.regErr
	}
	return s.user, nil
}

func (s *stubAuth) Token(_ context.Context, creds ports.Credentials) (*ports.TokenResult, error) {
	s.lastCreds = creds
	if s.tokenErr != nil {
		return nil, s.tokenErr
	}
	return s.token, nil
}

type stubSession struct {
	sess    *domain.Session
	saveErr error
}

func (s *stubSession) Restore() (*domain.Session, error) { return s.sess, nil }

func (s *stubSession) Save(sess domain.Session) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.sess = &sess
	return nil
}

func (s *stubSession) Clear() error             { s.sess = nil; return nil }
func (s *stubSession) Current() *domain.Session { return s.sess }
func (s *stubSession) IsAuthenticated() bool    { return s.sess != nil }

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func requireReady(t *testing.T, l Loader) {
	t.Helper()
	if l.Status() != StatusReady {
		t.Fatalf("status = %v (err %v), want ready", l.Status(), l.Err())
	}
}

func requireErrorNotice(t *testing.T, n Notice) {
	t.Helper()
	if !n.Active(time.Now()) || n.Kind != NoticeError {
		t.Fatalf("expected active error notice, got %+v", n)
	}
}

func requireSuccessNotice(t *testing.T, n Notice) {
	t.Helper()
	if !n.Active(time.Now()) || n.Kind != NoticeSuccess {
		t.Fatalf("expected active success notice, got %+v", n)
	}
}
