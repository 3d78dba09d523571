package view

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/actify/actify-cli/internal/core/domain"
	"github.com/actify/actify-cli/internal/core/ports"
)

// Home is the landing view: the user's profile summary, their open daily
// challenges, and the unread notification count. The profile is the primary
// resource; challenges and notifications are best-effort.
type Home struct {
	users         ports.UserClient
	challenges    ports.ChallengeClient
	notifications ports.NotificationClient
	logger        zerolog.Logger

	status Status
	err    error

	Me          *domain.User
	Active      []domain.Challenge
	UnreadCount int
}

func NewHome(users ports.UserClient, challenges ports.ChallengeClient, notifications ports.NotificationClient, logger zerolog.Logger) *Home {
	return &Home{users: users, challenges: challenges, notifications: notifications, logger: logger}
}

// Load fetches the three branches concurrently. A failure in the
// challenges or notifications branch degrades to empty data; only a
// profile failure puts the view in an error state.
func (v *Home) Load(ctx context.Context) {
	v.status = StatusLoading
	v.err = nil

	var (
		me     *domain.User
		meErr  error
		active []domain.Challenge
		unread int
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		me, meErr = v.users.Me(ctx)
	}()
	go func() {
		defer wg.Done()
		cs, err := v.challenges.ActiveChallenges(ctx)
		if err != nil {
			v.logger.Warn().Err(err).Msg("active challenges unavailable")
			return
		}
		active = cs
	}()
	go func() {
		defer wg.Done()
		ns, err := v.notifications.Notifications(ctx)
		if err != nil {
			v.logger.Warn().Err(err).Msg("notifications unavailable")
			return
		}
		for _, n := range ns {
			if !n.Read {
				unread++
			}
		}
	}()
	wg.Wait()

	if meErr != nil {
		v.status = StatusError
		v.err = meErr
		return
	}

	v.Me = me
	v.Active = active
	v.UnreadCount = unread
	v.status = StatusReady
}

func (v *Home) Status() Status { return v.status }
func (v *Home) Err() error     { return v.err }
