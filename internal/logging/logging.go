// Package logging builds the process logger.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logging configuration environment variables.
const (
	EnvLevel  = "TQMCORE_LOG_LEVEL"
	EnvFormat = "TQMCORE_LOG_FORMAT"
)

// NewFromEnv builds a production zap logger. TQMCORE_LOG_LEVEL accepts the
// usual zap level names (default info); TQMCORE_LOG_FORMAT=console switches
// off JSON output for interactive use.
func NewFromEnv() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if raw := os.Getenv(EnvLevel); raw != "" {
		level, err := zapcore.ParseLevel(strings.ToLower(raw))
		if err != nil {
			return nil, err
		}
		cfg.Level = zap.NewAtomicLevelAt(level)
	}
	if strings.EqualFold(os.Getenv(EnvFormat), "console") {
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	return cfg.Build()
}
