// Package logging configures the process-wide slog default, the teacher's
// ambient logging convention (util/logutil.go's InitSlog), generalized to
// crossql's own LOG_LEVEL environment variable.
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Init configures slog's default logger from the CROSSQL_LOG_LEVEL
// environment variable ("debug", "info", "warn", "error"; defaults to
// "info" when set but unrecognized, and leaves slog untouched when unset).
func Init() {
	levelStr, ok := os.LookupEnv("CROSSQL_LOG_LEVEL")
	if !ok {
		return
	}

	var level slog.Level
	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
