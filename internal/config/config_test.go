package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.True(t, cfg.Verbose)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOrDefault(t *testing.T) {
	// Should return default when no env vars set. t.Setenv registers
	// the restore; Unsetenv clears the variable for this test.
	for _, key := range []string{"FILESET_VERBOSE", "FILESET_COLOR", "FILESET_LOG_LEVEL"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := LoadOrDefault()

	assert.NotNil(t, cfg)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	t.Setenv("FILESET_VERBOSE", "false")
	t.Setenv("FILESET_COLOR", "never")
	t.Setenv("FILESET_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.Verbose)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadWithPartialEnvironmentVariables(t *testing.T) {
	t.Setenv("FILESET_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	// Verify overridden values
	assert.Equal(t, "warn", cfg.LogLevel)

	// Verify default values still apply
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "auto", cfg.Color)
}

func TestLoadRejectsMalformedBool(t *testing.T) {
	t.Setenv("FILESET_VERBOSE", "sometimes")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadOrDefaultRecovers(t *testing.T) {
	t.Setenv("FILESET_VERBOSE", "sometimes")

	cfg := LoadOrDefault()
	assert.Equal(t, Default(), cfg)
}

func TestColorEnabled(t *testing.T) {
	tests := []struct {
		name    string
		mode    string
		noColor string
		want    bool
	}{
		{
			name: "always wins regardless of terminal",
			mode: "always",
			want: true,
		},
		{
			name: "never wins regardless of terminal",
			mode: "never",
			want: false,
		},
		{
			name:    "always ignores NO_COLOR",
			mode:    "always",
			noColor: "1",
			want:    true,
		},
		{
			name:    "auto honors NO_COLOR",
			mode:    "auto",
			noColor: "1",
			want:    false,
		},
		{
			name:    "unknown mode falls back to auto",
			mode:    "rainbow",
			noColor: "1",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.noColor != "" {
				t.Setenv("NO_COLOR", tt.noColor)
			}

			cfg := &Settings{Color: tt.mode}
			assert.Equal(t, tt.want, cfg.ColorEnabled())
		})
	}
}

func TestColorEnabledDumbTerminal(t *testing.T) {
	t.Setenv("TERM", "dumb")

	cfg := &Settings{Color: "auto"}
	assert.False(t, cfg.ColorEnabled())
}
