package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Setup builds the application logger at the given level, installs it as
// the slog default, and returns it. Level matching is case-insensitive
// ("debug", "info", "warn", "error"); anything else means info, matching
// the FRIDGE_LOG_LEVEL default.
func Setup(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
