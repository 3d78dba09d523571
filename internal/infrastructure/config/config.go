package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	// APIURL is the base URL of the backend, including the /api prefix.
	APIURL string `env:"ACTIFY_API_URL, default=http://localhost:8000/api"`

	// SessionFile and HistoryFile default to ~/.actify/ when unset.
	SessionFile string `env:"ACTIFY_SESSION_FILE"`
	HistoryFile string `env:"ACTIFY_HISTORY_FILE"`

	LogLevel string `env:"LOG_LEVEL, default=warn"`
	NoColor  bool   `env:"NO_COLOR"`
}

// Load reads configuration from environment variables using go-envconfig
// and fills in the home-directory defaults envconfig cannot express.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	if cfg.SessionFile == "" || cfg.HistoryFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}
		if cfg.SessionFile == "" {
			cfg.SessionFile = filepath.Join(home, ".actify", "session.json")
		}
		if cfg.HistoryFile == "" {
			cfg.HistoryFile = filepath.Join(home, ".actify", "history")
		}
	}
	return &cfg, nil
}
