package app

import (
	"github.com/rs/zerolog"

	"github.com/actify/actify-cli/internal/core/ports"
	"github.com/actify/actify-cli/internal/core/view"
)

// Factory builds views with their dependencies passed in explicitly; views
// never reach into globals for their clients or the session.
type Factory struct {
	Session       ports.SessionStore
	Auth          ports.AuthClient
	Users         ports.UserClient
	Groups        ports.GroupClient
	Activities    ports.ActivityClient
	Submissions   ports.SubmissionClient
	Notifications ports.NotificationClient
	Challenges    ports.ChallengeClient
	Global        ports.LeaderboardClient
	Logger        zerolog.Logger
}

// Build constructs the view for a resolved route. Returns nil for unknown
// route names.
func (f *Factory) Build(rt Route, params map[string]string) any {
	userID := ""
	if sess := f.Session.Current(); sess != nil {
		userID = sess.UserID
	}

	switch rt.Name {
	case RouteLogin:
		return view.NewLogin(f.Auth, f.Session, f.Logger)
	case RouteRegister:
		return view.NewRegister(f.Auth, f.Users, f.Logger)
	case RouteHome:
		return view.NewHome(f.Users, f.Challenges, f.Notifications, f.Logger)
	case RouteProfile:
		return view.NewProfile(f.Users, f.Global, f.Logger)
	case RouteGroups:
		return view.NewGroups(f.Groups, f.Logger)
	case RouteGroupDetail:
		return view.NewGroupDetail(f.Groups, f.Activities, params["id"], userID, f.Logger)
	case RouteLeaderboard:
		return view.NewLeaderboard(f.Groups, params["id"], f.Logger)
	case RouteGlobalBoard:
		return view.NewGlobalLeaderboard(f.Global, f.Logger)
	case RouteSubmissions:
		return view.NewSubmissions(f.Activities, f.Submissions, params["id"], userID, f.Logger)
	case RouteChallenges:
		return view.NewChallenges(f.Challenges, f.Logger)
	case RouteNotifications:
		return view.NewNotifications(f.Notifications, f.Logger)
	default:
		return nil
	}
}
