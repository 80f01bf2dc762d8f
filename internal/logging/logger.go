package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates the CLI logger.
// It writes to Stderr, leaving Stdout to dumped values.
// It standardizes common keys (e.g., "error" -> "err").
func New(level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter is New writing to w.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// ParseLevel maps a --log-level value to a slog level. "off" disables logging.
func ParseLevel(s string) (slog.Level, bool, error) {
	if strings.EqualFold(s, "off") {
		return 0, false, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, false, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return level, true, nil
}

// FromFlag builds the logger a --log-level value asks for.
func FromFlag(s string) (*slog.Logger, error) {
	level, enabled, err := ParseLevel(s)
	if err != nil {
		return nil, err
	}
	if !enabled {
		return NewNop(), nil
	}
	return New(level), nil
}
