package sink

import (
	"context"
	"log/slog"
	"strconv"
)

// Slog forwards each call as a single log record, one attribute per value keyed by position.
// Property sets become groups, keeping their order.
type Slog struct {
	logger *slog.Logger
	level  slog.Level
	msg    string
}

// NewSlog returns a sink logging through logger at level with message msg.
func NewSlog(logger *slog.Logger, level slog.Level, msg string) *Slog {
	return &Slog{logger: logger, level: level, msg: msg}
}

func (s *Slog) Emit(ctx context.Context, values []any) error {
	if !s.logger.Enabled(ctx, s.level) {
		return nil
	}
	attrs := make([]slog.Attr, len(values))
	for i, v := range values {
		attrs[i] = slog.Any(strconv.Itoa(i), v)
	}
	s.logger.LogAttrs(ctx, s.level, s.msg, attrs...)
	return nil
}
