package view

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/actify/actify-cli/internal/core/domain"
	"github.com/actify/actify-cli/internal/core/ports"
)

// Challenges shows the cross-group challenge feeds: active today, featured
// picks, and the user's history. Active is the primary resource; the other
// two degrade to empty lists on failure.
type Challenges struct {
	challenges ports.ChallengeClient
	logger     zerolog.Logger

	status Status
	err    error

	Active   []domain.Challenge
	Featured []domain.Challenge
	History  []domain.Challenge
}

func NewChallenges(challenges ports.ChallengeClient, logger zerolog.Logger) *Challenges {
	return &Challenges{challenges: challenges, logger: logger}
}

func (v *Challenges) Load(ctx context.Context) {
	v.status = StatusLoading
	v.err = nil

	var (
		active    []domain.Challenge
		activeErr error
		featured  []domain.Challenge
		history   []domain.Challenge
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		active, activeErr = v.challenges.ActiveChallenges(ctx)
	}()
	go func() {
		defer wg.Done()
		cs, err := v.challenges.FeaturedChallenges(ctx)
		if err != nil {
			v.logger.Warn().Err(err).Msg("featured challenges unavailable")
			return
		}
		featured = cs
	}()
	go func() {
		defer wg.Done()
		cs, err := v.challenges.ChallengeHistory(ctx)
		if err != nil {
			v.logger.Warn().Err(err).Msg("challenge history unavailable")
			return
		}
		history = cs
	}()
	wg.Wait()

	if activeErr != nil {
		v.status = StatusError
		v.err = activeErr
		return
	}

	v.Active = active
	v.Featured = featured
	v.History = history
	v.status = StatusReady
}

func (v *Challenges) Status() Status { return v.status }
func (v *Challenges) Err() error     { return v.err }
