package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevelEnvVar selects the log level when no level is passed to
// Initialize. Unset or empty means no logging at all.
const LogLevelEnvVar = "HEADCURSOR_LOG_LEVEL"

var logger = zap.NewNop()

// Initialize replaces the package logger. level is one of debug, info,
// warn or error; empty falls back to HEADCURSOR_LOG_LEVEL and then to a
// nop logger. output is a file path, "stdout" or "stderr" (empty means
// stderr).
func Initialize(level, output string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if level == "" {
		Sync()
		logger = zap.NewNop()
		return nil
	}

	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	if output == "" {
		output = "stderr"
	}

	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeCaller = zapcore.ShortCallerEncoder
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	if output == "stdout" || output == "stderr" {
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         "console",
		EncoderConfig:    enc,
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	Sync()
	logger = l
	return nil
}

func parseLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("unknown log level %q (use debug, info, warn or error)", level)
}

// GetLogger returns the package logger.
func GetLogger() *zap.Logger {
	return logger
}

// SetLogger swaps the package logger, e.g. for a zaptest/observer core in
// tests. nil restores the nop logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

func Info(msg string, fields ...zap.Field)  { logger.Info(msg, fields...) }
func Debug(msg string, fields ...zap.Field) { logger.Debug(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { logger.Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { logger.Error(msg, fields...) }

// LogCommit records a setting written to a profile. source names the
// writer: "apply" for the store, "panel" or "cli" for callers.
func LogCommit(profile, key string, value int, source string) {
	logger.Info("Setting committed",
		zap.String("profile", profile),
		zap.String("key", key),
		zap.Int("value", value),
		zap.String("source", source),
	)
}

// LogProfileChange records a profile being added, switched to or reloaded.
func LogProfileChange(profile, event string) {
	logger.Info("Profile "+event, zap.String("profile", profile))
}

// Sync flushes buffered entries.
func Sync() {
	_ = logger.Sync()
}
