package tui

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// prompt reads one line with a temporary prompt, restoring the shell
// prompt afterwards.
func (s *Shell) prompt(label string) (string, error) {
	s.rl.SetPrompt(label)
	defer s.rl.SetPrompt(s.promptText())

	line, err := s.rl.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a password without echoing it.
func (s *Shell) promptPassword(label string) (string, error) {
	fmt.Fprint(s.out, label)
	defer fmt.Fprintln(s.out)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(raw), nil
}
