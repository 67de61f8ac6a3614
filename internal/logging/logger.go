// Package logging provides the zap-backed diagnostic sink shared by the
// fileset library and CLI. Output is console-encoded lines on stderr so
// stdout stays clean for command results.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger with a runtime verbosity toggle.
type Logger struct {
	*zap.Logger
	level zap.AtomicLevel
}

// Config defines logger configuration.
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Color       bool
	OutputPaths []string
}

// DefaultConfig returns the stderr console configuration.
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Color:       false,
		OutputPaths: []string{"stderr"},
	}
}

// New creates a new logger with the provided configuration.
func New(cfg Config) (*Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	atomic := zap.NewAtomicLevelAt(level)
	outputs := cfg.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	zapCfg := zap.Config{
		Level:             atomic,
		Encoding:          "console",
		EncoderConfig:     encoderConfig(cfg.Color),
		OutputPaths:       outputs,
		ErrorOutputPaths:  []string{"stderr"},
		DisableCaller:     true,
		DisableStacktrace: true,
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}

	return &Logger{Logger: logger, level: atomic}, nil
}

// NewDefault creates a logger with default configuration.
func NewDefault() *Logger {
	logger, err := New(DefaultConfig())
	if err != nil {
		// Fallback to no-op logger
		return NewNop()
	}
	return logger
}

// NewNop creates a logger that discards everything.
func NewNop() *Logger {
	return &Logger{Logger: zap.NewNop(), level: zap.NewAtomicLevel()}
}

// SetVerbose lowers the threshold to info when on and raises it to warn
// when off, so routine operation diagnostics can be silenced without
// losing warnings. A threshold already below info, such as debug, is
// left alone when turning verbosity on.
func (l *Logger) SetVerbose(on bool) {
	if on {
		if l.level.Level() > zapcore.InfoLevel {
			l.level.SetLevel(zapcore.InfoLevel)
		}
	} else {
		l.level.SetLevel(zapcore.WarnLevel)
	}
}

// Verbose reports whether info-level diagnostics are currently emitted.
func (l *Logger) Verbose() bool {
	return l.level.Enabled(zapcore.InfoLevel)
}

// parseLevel converts string level to zapcore.Level.
func parseLevel(level string) (zapcore.Level, error) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return zapcore.InfoLevel, err
	}
	return l, nil
}

// encoderConfig returns the console encoder, colored when asked for.
func encoderConfig(color bool) zapcore.EncoderConfig {
	encodeLevel := zapcore.CapitalLevelEncoder
	if color {
		encodeLevel = zapcore.CapitalColorLevelEncoder
	}

	return zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		NameKey:        "N",
		CallerKey:      zapcore.OmitKey,
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "M",
		StacktraceKey:  zapcore.OmitKey,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    encodeLevel,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}
