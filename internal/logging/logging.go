// Package logging sets up the CLI's structured logging: log/slog carries
// every application log line, while github.com/tliron/commonlog is
// configured (and immediately silenced) only because it needs an active
// backend registered at all times, giving the CLI a pluggable log
// backend without commonlog ever emitting a line itself.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple" // registers the backend commonlog.Configure needs
)

// ParseLevel maps a CLI-friendly level name to a slog.Level
// (error|warn|info|debug).
func ParseLevel(name string) (slog.Level, error) {
	switch name {
	case "error":
		return slog.LevelError, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	default:
		return 0, fmt.Errorf("invalid log level: %q", name)
	}
}

// Setup configures commonlog to idle (commonlog.Configure(0, nil): slog
// carries all logging) and returns a component-tagged slog.Logger writing
// JSON records to logFile, or stderr when logFile is empty. The returned
// cleanup closes any file handle Setup opened; it is always safe to call.
func Setup(level slog.Level, logFile string) (*slog.Logger, func() error, error) {
	commonlog.Configure(0, nil)

	var w io.Writer = os.Stderr
	cleanup := func() error { return nil }
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		cleanup = f.Close
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("component", "cli"), cleanup, nil
}
