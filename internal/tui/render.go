package tui

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/actify/actify-cli/internal/core/domain"
	"github.com/actify/actify-cli/internal/core/view"
)

var (
	heading = color.New(color.FgCyan, color.Bold).SprintFunc()
	dim     = color.New(color.Faint).SprintFunc()
	good    = color.New(color.FgGreen).SprintFunc()
	bad     = color.New(color.FgRed).SprintFunc()
	warn    = color.New(color.FgYellow).SprintFunc()
)

// Render draws one view snapshot. Views in an error state render the
// user-facing message for their error plus a retry hint; everything else
// renders its data.
func Render(w io.Writer, v any) {
	if loader, ok := v.(view.Loader); ok && loader.Status() == view.StatusError {
		fmt.Fprintln(w, bad(view.Message(loader.Err())))
		fmt.Fprintln(w, dim("Type 'retry' to try again."))
		return
	}

	switch v := v.(type) {
	case *view.Home:
		renderHome(w, v)
	case *view.Profile:
		renderProfile(w, v)
	case *view.Groups:
		renderGroups(w, v)
	case *view.GroupDetail:
		renderGroupDetail(w, v)
	case *view.Leaderboard:
		renderLeaderboard(w, v)
	case *view.GlobalLeaderboard:
		renderGlobalLeaderboard(w, v)
	case *view.Submissions:
		renderSubmissions(w, v)
	case *view.Challenges:
		renderChallenges(w, v)
	case *view.Notifications:
		renderNotifications(w, v)
	case *view.Login:
		renderNotice(w, v.Notice)
		fmt.Fprintln(w, heading("Sign in"))
		fmt.Fprintln(w, dim("Type 'login' to enter your credentials, or 'register' to create an account."))
	case *view.Register:
		renderNotice(w, v.Notice)
		fmt.Fprintln(w, heading("Create an account"))
		if len(v.Available) > 0 {
			names := make([]string, 0, len(v.Available))
			for _, interest := range v.Available {
				names = append(names, interest.Name)
			}
			fmt.Fprintln(w, dim("Interests you can pick: "+strings.Join(names, ", ")))
		}
		fmt.Fprintln(w, dim("Type 'register' to fill in the signup form."))
	default:
		fmt.Fprintln(w, dim("(nothing to show)"))
	}
}

func renderNotice(w io.Writer, n view.Notice) {
	if !n.Active(time.Now()) {
		return
	}
	if n.Kind == view.NoticeSuccess {
		fmt.Fprintln(w, good("✔ "+n.Text))
	} else {
		fmt.Fprintln(w, bad("✘ "+n.Text))
	}
}

func renderHome(w io.Writer, v *view.Home) {
	me := v.Me
	fmt.Fprintln(w, heading("Hello, "+me.Username))
	fmt.Fprintf(w, "  streak %d · %d points · %d challenges done\n",
		me.Streak, me.TotalPoints, me.CompletedChallenges)
	if v.UnreadCount > 0 {
		fmt.Fprintln(w, warn(fmt.Sprintf("  %d unread notifications", v.UnreadCount)))
	}

	if len(me.Groups) > 0 {
		fmt.Fprintln(w, heading("Your groups"))
		for _, g := range me.Groups {
			fmt.Fprintf(w, "  %s %s\n", g.Name, dim(g.ID))
		}
	} else {
		fmt.Fprintln(w, dim("You are not in any group yet. Try 'groups'."))
	}

	if len(v.Active) > 0 {
		fmt.Fprintln(w, heading("Today's challenges"))
		for _, c := range v.Active {
			renderChallengeLine(w, c)
		}
	}
}

func renderProfile(w io.Writer, v *view.Profile) {
	renderNotice(w, v.Notice)
	me := v.Me
	fmt.Fprintln(w, heading(me.Username)+" "+dim(me.Email))
	if me.Bio != "" {
		fmt.Fprintln(w, "  "+me.Bio)
	}
	if len(me.Interests) > 0 {
		fmt.Fprintln(w, "  interests: "+strings.Join(me.Interests, ", "))
	}
	fmt.Fprintf(w, "  streak %d · %d points · %d challenges done · %d submissions\n",
		me.Streak, me.TotalPoints, me.CompletedChallenges, me.SubmissionsCount)
	fmt.Fprintf(w, "  member since %s\n", me.CreatedAt.Format("Jan 2, 2006"))

	if len(v.TopUsers) > 0 {
		fmt.Fprintln(w, heading("Global top"))
		for _, e := range v.TopUsers {
			marker := "  "
			if e.ID == me.ID {
				marker = good("→ ")
			}
			fmt.Fprintf(w, "%s#%-3d %-20s %d pts · streak %d\n",
				marker, e.Rank, e.Username, e.TotalPoints, e.Streak)
		}
	}
	fmt.Fprintln(w, dim("Type 'update' to edit your profile."))
}

func renderGroups(w io.Writer, v *view.Groups) {
	renderNotice(w, v.Notice)
	fmt.Fprintln(w, heading("Your groups"))
	if len(v.Mine) == 0 {
		fmt.Fprintln(w, dim("  none yet"))
	}
	for i, g := range v.Mine {
		fmt.Fprintf(w, "  %d. %-25s %d/%d members  %s\n",
			i+1, g.Name, len(g.Members), g.MaxMembers, dim(g.ID))
	}

	if len(v.Public) > 0 {
		fmt.Fprintln(w, heading("Public groups"))
		for _, g := range v.Public {
			fmt.Fprintf(w, "  %-25s %d/%d members  %s\n",
				g.Name, len(g.Members), g.MaxMembers, dim("code "+g.InviteCode))
		}
	}
	fmt.Fprintln(w, dim("Commands: create, join <invite-code>, group <id>."))
}

func renderGroupDetail(w io.Writer, v *view.GroupDetail) {
	renderNotice(w, v.Notice)
	g := v.Group
	fmt.Fprintln(w, heading(g.Name))
	if g.Description != "" {
		fmt.Fprintln(w, "  "+g.Description)
	}
	fmt.Fprintln(w, "  invite code: "+g.InviteCode)

	fmt.Fprintln(w, heading("Members"))
	for i, m := range g.Members {
		tags := ""
		if g.IsAdmin(m.ID) {
			tags = warn(" admin")
		}
		if m.ID == v.CurrentUserID {
			tags += dim(" (you)")
		}
		fmt.Fprintf(w, "  %d. %s%s\n", i+1, m.Username, tags)
	}

	if g.TodayActivity != nil {
		fmt.Fprintln(w, heading("Today's activity"))
		a := *g.TodayActivity
		fmt.Fprintf(w, "  %s %s %s\n", a.Emoji, a.Title, dim(a.Difficulty))
		if a.Description != "" {
			fmt.Fprintln(w, "  "+a.Description)
		}
		fmt.Fprintln(w, dim("  Use 'subs "+a.ID+"' to see submissions."))
	} else {
		fmt.Fprintln(w, dim("No activity selected for today."))
	}

	if len(g.PendingActivities) > 0 {
		fmt.Fprintln(w, heading("Pending proposals"))
		for _, a := range g.PendingActivities {
			fmt.Fprintf(w, "  %s %s %s\n", a.Emoji, a.Title, dim("by "+a.CreatedBy))
		}
	} else {
		fmt.Fprintln(w, dim("No pending activity proposals. Type 'propose' to add one."))
	}

	cmds := "Commands: propose, board " + g.ID
	if v.CanAdminister() {
		cmds += ", select, promote <n>, remove <n>"
	}
	fmt.Fprintln(w, dim(cmds+"."))
}

func renderLeaderboard(w io.Writer, v *view.Leaderboard) {
	fmt.Fprintln(w, heading("Leaderboard"))
	if len(v.Entries) == 0 {
		fmt.Fprintln(w, dim("  no scores yet"))
		return
	}
	for _, e := range v.Entries {
		arrow := "  "
		switch mv := e.Movement(); {
		case mv > 0:
			arrow = good("↑ ")
		case mv < 0:
			arrow = bad("↓ ")
		}
		badges := ""
		if len(e.Badges) > 0 {
			badges = " " + strings.Join(e.Badges, " ")
		}
		fmt.Fprintf(w, "  #%-3d %s%-20s %.1f pts · streak %d%s\n",
			e.Rank, arrow, e.Username, e.Score, e.Streak, badges)
	}
}

func renderGlobalLeaderboard(w io.Writer, v *view.GlobalLeaderboard) {
	fmt.Fprintln(w, heading("Global leaderboard"))
	if len(v.Entries) == 0 {
		fmt.Fprintln(w, dim("  no scores yet"))
		return
	}
	for _, e := range v.Entries {
		fmt.Fprintf(w, "  #%-3d %-20s %d pts · streak %d · %d done\n",
			e.Rank, e.Username, e.TotalPoints, e.Streak, e.CompletedChallenges)
	}
}

func renderSubmissions(w io.Writer, v *view.Submissions) {
	renderNotice(w, v.Notice)
	fmt.Fprintln(w, heading("Submissions"))
	if len(v.Items) == 0 {
		fmt.Fprintln(w, dim("  no submissions yet; be the first with 'submit <photo>'"))
		return
	}
	for i, sub := range v.Items {
		voted := ""
		if sub.VotedBy(v.CurrentUserID) {
			voted = good(" ♥")
		}
		fmt.Fprintf(w, "  %d. %-15s %d votes%s  %s\n",
			i+1, sub.Username, sub.VoteCount, voted, dim(sub.SubmittedAt.Format("15:04")))
		if sub.Caption != "" {
			fmt.Fprintln(w, "     "+sub.Caption)
		}
		if line := reactionsLine(sub.Reactions); line != "" {
			fmt.Fprintln(w, "     "+line)
		}
	}
	fmt.Fprintln(w, dim("Commands: submit <file> [caption], vote <n>, react <n> <emoji>."))
}

// reactionsLine flattens a reactions map into "👍 ×3 🔥 ×1", emoji sorted
// for stable output.
func reactionsLine(reactions map[string][]string) string {
	if len(reactions) == 0 {
		return ""
	}
	emojis := make([]string, 0, len(reactions))
	for emoji := range reactions {
		emojis = append(emojis, emoji)
	}
	sort.Strings(emojis)

	parts := make([]string, 0, len(emojis))
	for _, emoji := range emojis {
		parts = append(parts, fmt.Sprintf("%s ×%d", emoji, len(reactions[emoji])))
	}
	return strings.Join(parts, "  ")
}

func renderChallenges(w io.Writer, v *view.Challenges) {
	fmt.Fprintln(w, heading("Active challenges"))
	if len(v.Active) == 0 {
		fmt.Fprintln(w, dim("  nothing active right now"))
	}
	for _, c := range v.Active {
		renderChallengeLine(w, c)
	}

	if len(v.Featured) > 0 {
		fmt.Fprintln(w, heading("Featured"))
		for _, c := range v.Featured {
			renderChallengeLine(w, c)
		}
	}
	if len(v.History) > 0 {
		fmt.Fprintln(w, heading("Past challenges"))
		for _, c := range v.History {
			renderChallengeLine(w, c)
		}
	}
}

func renderChallengeLine(w io.Writer, c domain.Challenge) {
	status := ""
	if c.Completed {
		status = good(" done")
	} else if c.IsToday {
		status = warn(" today")
	}
	fmt.Fprintf(w, "  %s %s %s%s  %s\n",
		c.Emoji, c.Title, dim(c.Difficulty), status, dim(c.ID))
}

func renderNotifications(w io.Writer, v *view.Notifications) {
	renderNotice(w, v.Notice)
	fmt.Fprintln(w, heading("Notifications"))
	if len(v.Items) == 0 {
		fmt.Fprintln(w, dim("  all quiet"))
		return
	}
	for i, n := range v.Items {
		marker := dim("· ")
		if !n.Read {
			marker = warn("● ")
		}
		fmt.Fprintf(w, "  %d. %s%s %s\n", i+1, marker, n.Title, dim(n.CreatedAt.Format("Jan 2 15:04")))
		fmt.Fprintln(w, "     "+n.Message)
	}
	fmt.Fprintln(w, dim("Commands: read <n>, readall."))
}
