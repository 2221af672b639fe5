package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// BuildLogger returns a stderr logger at the named level ("debug", "info", "warn", "error").
// Unknown levels fall back to info. Debug level also records the source location.
func BuildLogger(level string, json bool) *slog.Logger {
	return New(os.Stderr, level, json)
}

// New is BuildLogger with an explicit destination.
func New(w io.Writer, level string, json bool) *slog.Logger {
	lvl := ParseLevel(level)
	ops := &slog.HandlerOptions{
		AddSource: lvl == slog.LevelDebug,
		Level:     lvl,
	}
	if json {
		return slog.New(slog.NewJSONHandler(w, ops))
	}
	return slog.New(slog.NewTextHandler(w, ops))
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

func ErrAttr(err error) slog.Attr {
	return slog.Any("error", err)
}
