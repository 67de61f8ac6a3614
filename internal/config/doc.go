// Package config provides 12-factor configuration for fileset.
//
// Settings are loaded from environment variables with sensible defaults.
// CLI flags can override environment values at startup.
//
// Configuration:
//   - Verbose: per-operation diagnostic logging (on by default)
//   - Color: diagnostic coloring mode, resolved once at startup
//   - LogLevel: base zap level before the verbosity toggle
//
// Example Usage:
//
//	cfg := config.LoadOrDefault()
//	logger, _ := logging.New(logging.Config{Level: cfg.LogLevel, Color: cfg.ColorEnabled()})
//
// Environment Variables:
//   - FILESET_VERBOSE, FILESET_COLOR, FILESET_LOG_LEVEL
package config
