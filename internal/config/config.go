package config

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"github.com/mattn/go-isatty"
)

// Settings holds all fileset configuration.
type Settings struct {
	// Verbose gates per-operation diagnostics. On by default so scripts
	// narrate what they touch unless silenced.
	Verbose bool `envconfig:"FILESET_VERBOSE" default:"true"`

	// Color selects diagnostic coloring: "auto", "always", or "never".
	Color string `envconfig:"FILESET_COLOR" default:"auto"`

	// LogLevel is the base zap level before the verbosity toggle.
	LogLevel string `envconfig:"FILESET_LOG_LEVEL" default:"info"`
}

// Load loads configuration from environment variables.
func Load() (*Settings, error) {
	var cfg Settings
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Settings {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Settings {
	return &Settings{
		Verbose:  true,
		Color:    "auto",
		LogLevel: "info",
	}
}

// ColorEnabled resolves the color mode to a concrete decision for the
// diagnostic stream. Resolution happens once at startup; "auto" enables
// color only when stderr is a terminal, NO_COLOR is unset, and the
// terminal is not dumb. Unknown modes fall back to auto.
func (s *Settings) ColorEnabled() bool {
	switch s.Color {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
}
