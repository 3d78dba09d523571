package view

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/actify/actify-cli/internal/core/domain"
	"github.com/actify/actify-cli/internal/core/form"
	"github.com/actify/actify-cli/internal/core/ports"
)

// Groups lists the user's own groups (primary) and public groups open for
// discovery (best-effort).
type Groups struct {
	groups ports.GroupClient
	logger zerolog.Logger

	status Status
	err    error

	Mine   []domain.Group
	Public []domain.Group
	Notice Notice
}

func NewGroups(groups ports.GroupClient, logger zerolog.Logger) *Groups {
	return &Groups{groups: groups, logger: logger}
}

func (v *Groups) Load(ctx context.Context) {
	v.status = StatusLoading
	v.err = nil

	var (
		mine    []domain.Group
		mineErr error
		public  []domain.Group
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		mine, mineErr = v.groups.MyGroups(ctx)
	}()
	go func() {
		defer wg.Done()
		groups, err := v.groups.PublicGroups(ctx)
		if err != nil {
			v.logger.Warn().Err(err).Msg("public groups unavailable")
			return
		}
		public = groups
	}()
	wg.Wait()

	if mineErr != nil {
		v.status = StatusError
		v.err = mineErr
		return
	}

	v.Mine = mine
	v.Public = public
	v.status = StatusReady
}

// Create makes a new group and re-fetches the membership list. Returns the
// new group's ID so the caller can navigate to it, or "" on failure.
func (v *Groups) Create(ctx context.Context, f form.CreateGroup) string {
	if err := form.Validate(f); err != nil {
		v.Notice = errorNotice(err.Error())
		return ""
	}

	group, err := v.groups.CreateGroup(ctx, ports.CreateGroupInput{Name: f.Name, Description: f.Description})
	if err != nil {
		v.Notice = errorNotice(Message(err))
		return ""
	}

	v.refreshMine(ctx)
	v.Notice = successNotice("Group created. Invite code: " + group.InviteCode)
	return group.ID
}

// Join redeems an invite code and re-fetches the membership list. Returns
// the joined group's ID so the caller can navigate to it, or "" on failure.
func (v *Groups) Join(ctx context.Context, code string) string {
	f := form.JoinGroup{InviteCode: strings.ToUpper(strings.TrimSpace(code))}
	if err := form.Validate(f); err != nil {
		v.Notice = errorNotice(err.Error())
		return ""
	}

	group, err := v.groups.JoinGroup(ctx, f.InviteCode)
	if err != nil {
		v.Notice = errorNotice(Message(err))
		return ""
	}

	v.refreshMine(ctx)
	v.Notice = successNotice("Joined " + group.Name + ".")
	return group.ID
}

func (v *Groups) refreshMine(ctx context.Context) {
	mine, err := v.groups.MyGroups(ctx)
	if err != nil {
		v.logger.Warn().Err(err).Msg("group list refresh failed")
		return
	}
	v.Mine = mine
}

func (v *Groups) Status() Status { return v.status }
func (v *Groups) Err() error     { return v.err }
