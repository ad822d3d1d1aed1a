// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable for the tripkit client.
type Config struct {
	// APIBaseURL is the remote trip-planning API. The default matches the
	// local development server.
	APIBaseURL string `env:"TRIPKIT_API_URL" envDefault:"http://localhost:3333"`

	// DataDir is where the session database and log file live.
	// Defaults to ~/.tripkit when unset.
	DataDir string `env:"TRIPKIT_DATA_DIR"`

	// HTTPTimeout bounds every remote API call.
	HTTPTimeout time.Duration `env:"TRIPKIT_HTTP_TIMEOUT" envDefault:"10s"`

	// LogLevel controls the minimum log level: debug, info, warn, error.
	LogLevel string `env:"TRIPKIT_LOG_LEVEL" envDefault:"info"`
}

// Load reads the environment and fills in the data-dir default, creating the
// directory if needed.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config.Load: %w", err)
	}

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("config.Load: resolve home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".tripkit")
	}
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return Config{}, fmt.Errorf("config.Load: create data directory: %w", err)
	}

	return cfg, nil
}

// DBPath is the session database file inside the data dir.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "tripkit.db")
}

// LogPath is the log file inside the data dir. The terminal UI owns stdout,
// so logs go to a file instead.
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, "tripkit.log")
}
