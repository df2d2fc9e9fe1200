package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Log is the process-wide logger. It is usable before Init is called.
var Log = New(os.Stdout, slog.LevelInfo)

// Init configures the process-wide logger. Level is read from LOG_LEVEL (debug, info, warn, error).
func Init() {
	// JSON handler for production-ready logging
	Log = New(os.Stdout, parseLevel(os.Getenv("LOG_LEVEL")))
	slog.SetDefault(Log)
}

// New builds a JSON logger writing to w
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
