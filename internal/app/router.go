// Package app wires navigation: a route table mapping browser-style paths
// to views, the guard that keeps anonymous users out of protected views,
// and the epoch bookkeeping that discards stale fetch results.
package app

import "strings"

// Route names, used by the view factory.
const (
	RouteLogin         = "login"
	RouteRegister      = "register"
	RouteHome          = "home"
	RouteProfile       = "profile"
	RouteGroups        = "groups"
	RouteGroupDetail   = "group"
	RouteLeaderboard   = "leaderboard"
	RouteGlobalBoard   = "global-leaderboard"
	RouteSubmissions   = "submissions"
	RouteChallenges    = "challenges"
	RouteNotifications = "notifications"
)

// Route maps a path pattern to a named view. Protected routes require an
// authenticated session.
type Route struct {
	Pattern   string
	Name      string
	Protected bool
}

// routes is the full navigation surface, mirroring the app's URL scheme.
var routes = []Route{
	{Pattern: "/login", Name: RouteLogin},
	{Pattern: "/register", Name: RouteRegister},
	{Pattern: "/", Name: RouteHome, Protected: true},
	{Pattern: "/profile", Name: RouteProfile, Protected: true},
	{Pattern: "/groups", Name: RouteGroups, Protected: true},
	{Pattern: "/groups/{id}", Name: RouteGroupDetail, Protected: true},
	{Pattern: "/groups/{id}/leaderboard", Name: RouteLeaderboard, Protected: true},
	{Pattern: "/leaderboard", Name: RouteGlobalBoard, Protected: true},
	{Pattern: "/activities/{id}/submissions", Name: RouteSubmissions, Protected: true},
	{Pattern: "/challenges", Name: RouteChallenges, Protected: true},
	{Pattern: "/notifications", Name: RouteNotifications, Protected: true},
}

// Lookup finds the route matching path and extracts its parameters.
func Lookup(path string) (Route, map[string]string, bool) {
	path = normalize(path)
	for _, rt := range routes {
		if params, ok := match(rt.Pattern, path); ok {
			return rt, params, true
		}
	}
	return Route{}, nil, false
}

func normalize(path string) string {
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimRight(path, "/")
	}
	return path
}

// match compares a pattern against a concrete path segment by segment.
// Segments of the form {name} capture the path segment under that name.
func match(pattern, path string) (map[string]string, bool) {
	if pattern == path {
		return nil, true
	}

	pSegs := strings.Split(strings.Trim(pattern, "/"), "/")
	segs := strings.Split(strings.Trim(path, "/"), "/")
	if len(pSegs) != len(segs) {
		return nil, false
	}

	var params map[string]string
	for i, pSeg := range pSegs {
		if strings.HasPrefix(pSeg, "{") && strings.HasSuffix(pSeg, "}") {
			if segs[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string)
			}
			params[strings.Trim(pSeg, "{}")] = segs[i]
			continue
		}
		if pSeg != segs[i] {
			return nil, false
		}
	}
	return params, true
}
