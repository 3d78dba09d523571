package view

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/actify/actify-cli/internal/core/domain"
	"github.com/actify/actify-cli/internal/core/ports"
)

// Profile shows the user's own profile alongside the global top users. The
// profile is primary; the top-users list is best-effort and must never
// block the profile from rendering.
type Profile struct {
	users  ports.UserClient
	global ports.LeaderboardClient
	logger zerolog.Logger

	status Status
	err    error

	Me       *domain.User
	TopUsers []domain.GlobalEntry
	Notice   Notice
}

func NewProfile(users ports.UserClient, global ports.LeaderboardClient, logger zerolog.Logger) *Profile {
	return &Profile{users: users, global: global, logger: logger}
}

func (v *Profile) Load(ctx context.Context) {
	v.status = StatusLoading
	v.err = nil

	var (
		me    *domain.User
		meErr error
		top   []domain.GlobalEntry
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		me, meErr = v.users.Me(ctx)
	}()
	go func() {
		defer wg.Done()
		entries, err := v.global.GlobalLeaderboard(ctx)
		if err != nil {
			v.logger.Warn().Err(err).Msg("global leaderboard unavailable")
			return
		}
		if len(entries) > 10 {
			entries = entries[:10]
		}
		top = entries
	}()
	wg.Wait()

	if meErr != nil {
		v.status = StatusError
		v.err = meErr
		return
	}

	v.Me = me
	v.TopUsers = top
	v.status = StatusReady
}

// Update sends a partial profile update, then re-fetches the authoritative
// profile. Server-side effects (photo URL assignment, interest cleanup)
// only ever reach the view through the re-fetch.
func (v *Profile) Update(ctx context.Context, in ports.ProfileUpdateInput) {
	if _, err := v.users.UpdateProfile(ctx, in); err != nil {
		v.Notice = errorNotice(Message(err))
		return
	}

	me, err := v.users.Me(ctx)
	if err != nil {
		v.Notice = errorNotice(Message(err))
		return
	}
	v.Me = me
	v.Notice = successNotice("Profile updated.")
}

func (v *Profile) Status() Status { return v.status }
func (v *Profile) Err() error     { return v.err }
