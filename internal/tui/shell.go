// Package tui is the interactive terminal front end: a readline loop that
// maps commands onto navigations and view actions, and renderers that draw
// each view's snapshot.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/actify/actify-cli/internal/app"
	"github.com/actify/actify-cli/internal/core/domain"
	"github.com/actify/actify-cli/internal/core/form"
	"github.com/actify/actify-cli/internal/core/ports"
	"github.com/actify/actify-cli/internal/core/view"
)

// Shell drives the client: one command per line, one current view.
type Shell struct {
	rl      *readline.Instance
	nav     *app.Navigator
	session ports.SessionStore
	out     io.Writer
	logger  zerolog.Logger

	current *app.Mounted
}

func NewShell(rl *readline.Instance, nav *app.Navigator, session ports.SessionStore, out io.Writer, logger zerolog.Logger) *Shell {
	return &Shell{rl: rl, nav: nav, session: session, out: out, logger: logger}
}

func (s *Shell) promptText() string {
	user := ""
	if sess := s.session.Current(); sess != nil {
		user = ":" + sess.Username
	}
	path := "/"
	if s.current != nil {
		path = s.current.Path
	}
	return fmt.Sprintf("actify%s %s> ", user, path)
}

// Run starts at the home route (the guard bounces anonymous users to
// login) and loops until exit or EOF.
func (s *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Welcome to ACTIFY. Type 'help' for commands.")
	s.navigate(ctx, "/")

	for {
		s.rl.SetPrompt(s.promptText())
		line, err := s.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			fmt.Fprintln(s.out, "Use 'exit' to quit.")
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}
		s.dispatch(ctx, line)
	}
}

func (s *Shell) dispatch(ctx context.Context, line string) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		s.printHelp()
	case "open":
		if len(args) != 1 {
			s.errorf("usage: open <path>")
			return
		}
		s.navigate(ctx, args[0])
	case "home":
		s.navigate(ctx, "/")
	case "profile", "groups", "challenges", "notifications", "leaderboard":
		s.navigate(ctx, "/"+cmd)
	case "group":
		if len(args) != 1 {
			s.errorf("usage: group <group-id>")
			return
		}
		s.navigate(ctx, "/groups/"+args[0])
	case "board":
		if len(args) != 1 {
			s.errorf("usage: board <group-id>")
			return
		}
		s.navigate(ctx, "/groups/"+args[0]+"/leaderboard")
	case "subs":
		if len(args) != 1 {
			s.errorf("usage: subs <activity-id>")
			return
		}
		s.navigate(ctx, "/activities/"+args[0]+"/submissions")
	case "login":
		s.login(ctx)
	case "register":
		s.register(ctx)
	case "logout":
		s.logout(ctx)
	case "retry", "refresh":
		s.reload(ctx)
	default:
		s.action(ctx, cmd, args)
	}
}

// navigate mounts the view for path, loads it, and renders the outcome.
func (s *Shell) navigate(ctx context.Context, path string) {
	m, err := s.nav.Navigate(path)
	if err != nil {
		s.errorf("%v", err)
		return
	}
	s.current = m

	if m.RedirectedFrom != "" {
		s.infof("Login required for %s. Use 'login' (or 'register').", m.RedirectedFrom)
	}

	if loader, ok := m.View.(view.Loader); ok {
		fmt.Fprintf(s.out, "Loading %s ...\n", m.Path)
		loader.Load(ctx)
	}
	s.render(m.Epoch)
}

// render draws the current view, unless epoch is stale (the user already
// navigated elsewhere). A view whose primary fetch died on an expired
// token forces a logout and a return to the login view.
func (s *Shell) render(epoch int) {
	if !s.nav.IsCurrent(epoch) {
		return
	}

	if loader, ok := s.current.View.(view.Loader); ok {
		if loader.Status() == view.StatusError && errors.Is(loader.Err(), domain.ErrSessionExpired) {
			s.errorf("Your session has expired. Please log in again.")
			s.forceLogin()
			return
		}
	}

	Render(s.out, s.current.View)
}

func (s *Shell) forceLogin() {
	if err := s.nav.Logout(); err != nil {
		s.logger.Warn().Err(err).Msg("session clear failed")
	}
	m, err := s.nav.Navigate("/login")
	if err != nil {
		s.errorf("%v", err)
		return
	}
	s.current = m
	Render(s.out, m.View)
}

// reload re-runs the current view's Load; this is the retry action for a
// view stuck in an error state.
func (s *Shell) reload(ctx context.Context) {
	if s.current == nil {
		return
	}
	loader, ok := s.current.View.(view.Loader)
	if !ok {
		s.infof("Nothing to reload here.")
		return
	}
	fmt.Fprintf(s.out, "Loading %s ...\n", s.current.Path)
	loader.Load(ctx)
	s.render(s.current.Epoch)
}

func (s *Shell) login(ctx context.Context) {
	if s.current == nil {
		s.navigate(ctx, "/login")
	} else if _, ok := s.current.View.(*view.Login); !ok {
		s.navigate(ctx, "/login")
	}
	if s.current == nil {
		return
	}
	lv, ok := s.current.View.(*view.Login)
	if !ok {
		return
	}

	username, err := s.prompt("username: ")
	if err != nil {
		return
	}
	password, err := s.promptPassword("password: ")
	if err != nil {
		s.errorf("%v", err)
		return
	}

	if !lv.Submit(ctx, form.Login{Username: username, Password: password}) {
		Render(s.out, lv)
		return
	}

	s.successf("Logged in as %s.", username)
	s.navigate(ctx, s.nav.ConsumePending())
}

func (s *Shell) register(ctx context.Context) {
	if s.current == nil {
		s.navigate(ctx, "/register")
	} else if _, ok := s.current.View.(*view.Register); !ok {
		s.navigate(ctx, "/register")
	}
	if s.current == nil {
		return
	}
	rv, ok := s.current.View.(*view.Register)
	if !ok {
		return
	}

	username, err := s.prompt("username: ")
	if err != nil {
		return
	}
	email, err := s.prompt("email: ")
	if err != nil {
		return
	}
	password, err := s.promptPassword("password: ")
	if err != nil {
		s.errorf("%v", err)
		return
	}
	bio, err := s.prompt("bio (optional): ")
	if err != nil {
		return
	}
	interestsLine, err := s.prompt("interests, comma-separated (optional): ")
	if err != nil {
		return
	}

	f := form.Register{Username: username, Email: email, Password: password, Bio: bio}
	for _, interest := range strings.Split(interestsLine, ",") {
		if interest = strings.TrimSpace(interest); interest != "" {
			f.Interests = append(f.Interests, interest)
		}
	}

	if rv.Submit(ctx, f) {
		Render(s.out, rv)
		s.infof("Use 'login' to sign in.")
		return
	}
	Render(s.out, rv)
}

func (s *Shell) logout(ctx context.Context) {
	if err := s.nav.Logout(); err != nil {
		s.errorf("logout: %v", err)
		return
	}
	s.successf("Logged out.")
	s.navigate(ctx, "/login")
}

// action handles the commands that belong to the current view.
func (s *Shell) action(ctx context.Context, cmd string, args []string) {
	if s.current == nil {
		s.errorf("unknown command %q; try 'help'", cmd)
		return
	}
	switch v := s.current.View.(type) {
	case *view.Groups:
		s.groupsAction(ctx, v, cmd, args)
	case *view.GroupDetail:
		s.groupDetailAction(ctx, v, cmd, args)
	case *view.Submissions:
		s.submissionsAction(ctx, v, cmd, args)
	case *view.Profile:
		s.profileAction(ctx, v, cmd)
	case *view.Notifications:
		s.notificationsAction(ctx, v, cmd, args)
	default:
		s.errorf("unknown command %q here; try 'help'", cmd)
	}
}

func (s *Shell) groupsAction(ctx context.Context, v *view.Groups, cmd string, args []string) {
	switch cmd {
	case "create":
		name, err := s.prompt("group name: ")
		if err != nil {
			return
		}
		desc, err := s.prompt("description (optional): ")
		if err != nil {
			return
		}
		id := v.Create(ctx, form.CreateGroup{Name: name, Description: desc})
		Render(s.out, v)
		if id != "" {
			s.navigate(ctx, "/groups/"+id)
		}
	case "join":
		if len(args) != 1 {
			s.errorf("usage: join <invite-code>")
			return
		}
		id := v.Join(ctx, args[0])
		Render(s.out, v)
		if id != "" {
			s.navigate(ctx, "/groups/"+id)
		}
	default:
		s.errorf("unknown command %q here; try 'help'", cmd)
	}
}

func (s *Shell) groupDetailAction(ctx context.Context, v *view.GroupDetail, cmd string, args []string) {
	switch cmd {
	case "propose":
		title, err := s.prompt("activity title: ")
		if err != nil {
			return
		}
		desc, err := s.prompt("description (optional): ")
		if err != nil {
			return
		}
		emoji, err := s.prompt("emoji (optional): ")
		if err != nil {
			return
		}
		difficulty, err := s.prompt("difficulty easy/medium/hard (optional): ")
		if err != nil {
			return
		}
		days := 0
		if line, err := s.prompt("deadline in days (optional): "); err == nil && line != "" {
			if days, err = strconv.Atoi(line); err != nil {
				s.errorf("deadline must be a number of days")
				return
			}
		}
		v.Propose(ctx, form.Activity{Title: title, Description: desc, Emoji: emoji, Difficulty: difficulty, DeadlineDays: days})
		Render(s.out, v)
	case "select":
		v.SelectDaily(ctx)
		Render(s.out, v)
	case "promote", "remove":
		if v.Group == nil {
			return
		}
		idx, err := parseIndex(args, len(v.Group.Members))
		if err != nil {
			s.errorf("usage: %s <member-number>: %v", cmd, err)
			return
		}
		member := v.Group.Members[idx]
		if cmd == "promote" {
			v.Promote(ctx, member.ID)
		} else {
			v.Remove(ctx, member.ID)
		}
		Render(s.out, v)
	default:
		s.errorf("unknown command %q here; try 'help'", cmd)
	}
}

func (s *Shell) submissionsAction(ctx context.Context, v *view.Submissions, cmd string, args []string) {
	switch cmd {
	case "vote":
		idx, err := parseIndex(args, len(v.Items))
		if err != nil {
			s.errorf("usage: vote <submission-number>: %v", err)
			return
		}
		v.Vote(ctx, v.Items[idx].ID)
		Render(s.out, v)
	case "react":
		if len(args) != 2 {
			s.errorf("usage: react <submission-number> <emoji>")
			return
		}
		idx, err := parseIndex(args[:1], len(v.Items))
		if err != nil {
			s.errorf("usage: react <submission-number> <emoji>: %v", err)
			return
		}
		v.React(ctx, v.Items[idx].ID, args[1])
		Render(s.out, v)
	case "submit":
		if len(args) < 1 {
			s.errorf("usage: submit <photo-file> [caption ...]")
			return
		}
		caption := strings.Join(args[1:], " ")
		v.Submit(ctx, args[0], caption, nil, nil)
		Render(s.out, v)
	default:
		s.errorf("unknown command %q here; try 'help'", cmd)
	}
}

func (s *Shell) profileAction(ctx context.Context, v *view.Profile, cmd string) {
	switch cmd {
	case "update":
		bio, err := s.prompt("bio (blank keeps current): ")
		if err != nil {
			return
		}
		interestsLine, err := s.prompt("interests, comma-separated (blank keeps current): ")
		if err != nil {
			return
		}
		photo, err := s.prompt("photo file (blank keeps current): ")
		if err != nil {
			return
		}

		var in ports.ProfileUpdateInput
		if bio != "" {
			in.Bio = &bio
		}
		if interestsLine != "" {
			for _, interest := range strings.Split(interestsLine, ",") {
				if interest = strings.TrimSpace(interest); interest != "" {
					in.Interests = append(in.Interests, interest)
				}
			}
		}
		in.PhotoPath = photo

		v.Update(ctx, in)
		Render(s.out, v)
	default:
		s.errorf("unknown command %q here; try 'help'", cmd)
	}
}

func (s *Shell) notificationsAction(ctx context.Context, v *view.Notifications, cmd string, args []string) {
	switch cmd {
	case "read":
		idx, err := parseIndex(args, len(v.Items))
		if err != nil {
			s.errorf("usage: read <notification-number>: %v", err)
			return
		}
		v.MarkRead(ctx, v.Items[idx].ID)
		Render(s.out, v)
	case "readall":
		v.MarkAllRead(ctx)
		Render(s.out, v)
	default:
		s.errorf("unknown command %q here; try 'help'", cmd)
	}
}

// parseIndex turns a 1-based list number argument into a slice index.
func parseIndex(args []string, max int) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("expected one number")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", args[0])
	}
	if n < 1 || n > max {
		return 0, fmt.Errorf("number out of range 1..%d", max)
	}
	return n - 1, nil
}

func (s *Shell) printHelp() {
	help := `Navigation:
  home | profile | groups | challenges | notifications
  leaderboard         global ranking across groups
  group <id>          open one group
  board <group-id>    group leaderboard
  subs <activity-id>  an activity's submissions
  open <path>         navigate by path, e.g. open /groups/abc
  retry | refresh     reload the current view

Account:
  login | register | logout

In /groups:        create, join <invite-code>
In a group:        propose, select, promote <n>, remove <n>
In submissions:    submit <file> [caption], vote <n>, react <n> <emoji>
In /profile:       update
In notifications:  read <n>, readall

exit | quit`
	fmt.Fprintln(s.out, help)
}

func (s *Shell) errorf(format string, args ...any) {
	fmt.Fprintln(s.out, color.RedString(format, args...))
}

func (s *Shell) successf(format string, args ...any) {
	fmt.Fprintln(s.out, color.GreenString(format, args...))
}

func (s *Shell) infof(format string, args ...any) {
	fmt.Fprintln(s.out, color.YellowString(format, args...))
}
