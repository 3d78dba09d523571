package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/actify/actify-cli/internal/app"
	"github.com/actify/actify-cli/internal/infrastructure/config"
	"github.com/actify/actify-cli/internal/infrastructure/httpapi"
	"github.com/actify/actify-cli/internal/infrastructure/sessionfile"
	"github.com/actify/actify-cli/internal/tui"
	"github.com/actify/actify-cli/pkg/logger"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "actify:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})
	if cfg.NoColor {
		color.NoColor = true
	}

	session := sessionfile.New(cfg.SessionFile, log)
	if _, err := session.Restore(); err != nil {
		log.Warn().Err(err).Msg("session restore failed, starting anonymous")
	}

	api := httpapi.New(cfg.APIURL, session, log)
	factory := &app.Factory{
		Session:       session,
		Auth:          api,
		Users:         api,
		Groups:        api,
		Activities:    api,
		Submissions:   api,
		Notifications: api,
		Challenges:    api,
		Global:        api,
		Logger:        log,
	}
	nav := app.NewNavigator(session, factory, log)

	if err := os.MkdirAll(filepath.Dir(cfg.HistoryFile), 0o700); err != nil {
		log.Warn().Err(err).Msg("history directory unavailable")
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "actify> ",
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer rl.Close()

	shell := tui.NewShell(rl, nav, session, os.Stdout, log)
	return shell.Run(ctx)
}
