// Package logging provides the structured logging setup for the mod
// assignment engine. It wires go.uber.org/zap behind a logr.Logger so that
// engine code logs through the logr verbosity API while deployments keep
// zap's encoder and level configuration.
package logging

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Verbosity levels used with logr's V(). INFO-level messages are emitted at
// verbosity 0; DEBUG and TRACE map to increasingly negative zap levels.
const (
	INFO  = 0
	DEBUG = 1
	TRACE = 2
)

// Config carries the parameters required to construct a logger.
type Config struct {
	// Level is the minimum severity that will be emitted. Accepted values
	// (case-insensitive): "debug", "info", "warn", "error". Defaults to
	// "info" when empty or unrecognized.
	Level string `yaml:"level" json:"level"`

	// Format selects the output encoding: "json" for aggregation pipelines,
	// "console" for local development. Defaults to "json".
	Format string `yaml:"format" json:"format"`
}

// Validate checks for invalid logging configuration values.
func (c Config) Validate() error {
	switch strings.ToLower(c.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level %q", c.Level)
	}
	switch strings.ToLower(c.Format) {
	case "", "json", "console":
	default:
		return fmt.Errorf("unsupported log format %q", c.Format)
	}
	return nil
}

// NewLogger constructs a logr.Logger backed by zap from the given config.
func NewLogger(cfg Config) (logr.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return logr.Logger{}, err
	}

	zapCfg := zap.NewProductionConfig()
	if strings.ToLower(cfg.Format) == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Level))
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	z, err := zapCfg.Build()
	if err != nil {
		return logr.Logger{}, fmt.Errorf("failed to build zap logger: %w", err)
	}
	return zapr.NewLogger(z), nil
}

// NewTestLogger returns a development-encoded logger suitable for test
// suites. It never fails; tests should not have to handle logger errors.
func NewTestLogger() logr.Logger {
	z, err := zap.NewDevelopment()
	if err != nil {
		return logr.Discard()
	}
	return zapr.NewLogger(z)
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// NewContext returns a context carrying the given logger.
func NewContext(ctx context.Context, logger logr.Logger) context.Context {
	return logr.NewContext(ctx, logger)
}

// FromContext returns the logger stored in ctx, or a discarding logger when
// none is present. Engine code threads loggers exclusively through contexts.
func FromContext(ctx context.Context) logr.Logger {
	return logr.FromContextOrDiscard(ctx)
}
