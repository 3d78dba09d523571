package view

import (
	"context"
	"testing"

	"github.com/actify/actify-cli/internal/core/domain"
	"github.com/actify/actify-cli/internal/core/form"
)

func crewDetail() *domain.GroupDetail {
	return &domain.GroupDetail{
		ID:        "g1",
		Name:      "Crew",
		CreatedBy: "u-creator",
		Admins:    []string{"u-admin"},
		Members: []domain.Member{
			{ID: "u-creator", Username: "creator"},
			{ID: "u-admin", Username: "admin"},
			{ID: "u-plain", Username: "plain"},
		},
	}
}

// A group with no pending proposals is an empty state, not an error.
func TestGroupDetail_EmptyPendingPoolIsReady(t *testing.T) {
	groups := &stubGroups{detail: crewDetail()}
	v := NewGroupDetail(groups, &stubActivities{}, "g1", "u-plain", discardLogger)
	v.Load(context.Background())

	requireReady(t, v)
	if len(v.Group.PendingActivities) != 0 {
		t.Errorf("PendingActivities = %+v", v.Group.PendingActivities)
	}
}

func TestGroupDetail_CanAdminister(t *testing.T) {
	cases := []struct {
		userID string
		want   bool
	}{
		{"u-creator", true},
		{"u-admin", true},
		{"u-plain", false},
		{"", false},
	}
	for _, tc := range cases {
		groups := &stubGroups{detail: crewDetail()}
		v := NewGroupDetail(groups, &stubActivities{}, "g1", tc.userID, discardLogger)
		v.Load(context.Background())
		if got := v.CanAdminister(); got != tc.want {
			t.Errorf("CanAdminister(%q) = %v, want %v", tc.userID, got, tc.want)
		}
	}
}

func TestGroupDetail_ProposeRefreshesGroup(t *testing.T) {
	groups := &stubGroups{detail: crewDetail()}
	activities := &stubActivities{created: &domain.Activity{ID: "a1", Title: "Plank"}}
	v := NewGroupDetail(groups, activities, "g1", "u-plain", discardLogger)
	v.Load(context.Background())
	before := groups.detailCalls

	v.Propose(context.Background(), form.Activity{Title: "Plank"})

	if activities.lastCreate.GroupID != "g1" || activities.lastCreate.Title != "Plank" {
		t.Errorf("create input = %+v", activities.lastCreate)
	}
	if groups.detailCalls != before+1 {
		t.Error("Propose must re-fetch the group")
	}
	requireSuccessNotice(t, v.Notice)
}

func TestGroupDetail_ProposeRejectsInvalidForm(t *testing.T) {
	groups := &stubGroups{detail: crewDetail()}
	activities := &stubActivities{}
	v := NewGroupDetail(groups, activities, "g1", "u-plain", discardLogger)
	v.Load(context.Background())

	v.Propose(context.Background(), form.Activity{Title: "", Difficulty: "brutal"})

	if activities.lastCreate.Title != "" {
		t.Error("invalid proposal must never be sent")
	}
	requireErrorNotice(t, v.Notice)
}

func TestGroupDetail_SelectDailyEmptyPool(t *testing.T) {
	groups := &stubGroups{detail: crewDetail()}
	activities := &stubActivities{selectErr: domain.ErrNoPendingActivities}
	v := NewGroupDetail(groups, activities, "g1", "u-creator", discardLogger)
	v.Load(context.Background())
	before := groups.detailCalls

	v.SelectDaily(context.Background())

	requireErrorNotice(t, v.Notice)
	if groups.detailCalls != before {
		t.Error("failed selection must not re-fetch")
	}
}

func TestGroupDetail_PromoteThenRefresh(t *testing.T) {
	groups := &stubGroups{detail: crewDetail()}
	v := NewGroupDetail(groups, &stubActivities{}, "g1", "u-creator", discardLogger)
	v.Load(context.Background())
	before := groups.detailCalls

	v.Promote(context.Background(), "u-plain")

	if len(groups.promoted) != 1 || groups.promoted[0] != "u-plain" {
		t.Errorf("promoted = %v", groups.promoted)
	}
	if groups.detailCalls != before+1 {
		t.Error("Promote must re-fetch the group")
	}
	requireSuccessNotice(t, v.Notice)
}

func TestGroupDetail_RemoveLastAdminRejected(t *testing.T) {
	groups := &stubGroups{detail: crewDetail(), removeErr: domain.ErrLastAdmin}
	v := NewGroupDetail(groups, &stubActivities{}, "g1", "u-creator", discardLogger)
	v.Load(context.Background())

	v.Remove(context.Background(), "u-admin")

	requireErrorNotice(t, v.Notice)
	if len(groups.removed) != 0 {
		t.Errorf("removed = %v", groups.removed)
	}
}

// A failed re-fetch after a successful mutation keeps the previous
// snapshot on screen instead of blanking the view.
func TestGroupDetail_RefreshFailureKeepsSnapshot(t *testing.T) {
	groups := &stubGroups{detail: crewDetail()}
	v := NewGroupDetail(groups, &stubActivities{}, "g1", "u-creator", discardLogger)
	v.Load(context.Background())

	groups.detailErr = domain.ErrUnreachable
	v.Promote(context.Background(), "u-plain")

	if v.Group == nil || v.Group.Name != "Crew" {
		t.Errorf("snapshot lost: %+v", v.Group)
	}
	requireErrorNotice(t, v.Notice)
}
