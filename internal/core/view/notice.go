package view

import "time"

// noticeTTL is how long a transient notice stays visible. Notices are
// purely cosmetic and never gate interaction.
const noticeTTL = 4 * time.Second

type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeError
)

// Notice is a transient, view-local success or error message.
type Notice struct {
	Kind    NoticeKind
	Text    string
	Expires time.Time
}

// Active reports whether the notice should still be rendered at now.
func (n Notice) Active(now time.Time) bool {
	return n.Text != "" && now.Before(n.Expires)
}

func newNotice(kind NoticeKind, text string) Notice {
	return Notice{Kind: kind, Text: text, Expires: time.Now().Add(noticeTTL)}
}

func successNotice(text string) Notice { return newNotice(NoticeSuccess, text) }

func errorNotice(text string) Notice { return newNotice(NoticeError, text) }
