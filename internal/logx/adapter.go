package logx

import (
	"context"
	"log/slog"
)

// SlogAdapter adapts the standard library slog.Logger to the logx.Logger interface.
type SlogAdapter struct {
	l *slog.Logger
}

// NewSlogAdapter returns a Logger backed by l. A nil l falls back to slog.Default().
func NewSlogAdapter(l *slog.Logger) Logger {
	if l == nil {
		l = slog.Default()
	}
	return &SlogAdapter{l: l}
}

var nop Logger = &SlogAdapter{l: slog.New(slog.DiscardHandler)}

// Nop returns a Logger that drops every record.
func Nop() Logger { return nop }

func (s *SlogAdapter) Debug(msg string, fields ...Field) { s.log(slog.LevelDebug, msg, fields) }
func (s *SlogAdapter) Info(msg string, fields ...Field)  { s.log(slog.LevelInfo, msg, fields) }
func (s *SlogAdapter) Warn(msg string, fields ...Field)  { s.log(slog.LevelWarn, msg, fields) }
func (s *SlogAdapter) Error(msg string, fields ...Field) { s.log(slog.LevelError, msg, fields) }

// With returns a logger that adds fields to every record.
func (s *SlogAdapter) With(fields ...Field) Logger {
	if len(fields) == 0 {
		return s
	}
	args := make([]any, len(fields))
	for i, a := range toAttrs(fields) {
		args[i] = a
	}
	return &SlogAdapter{l: s.l.With(args...)}
}

// Sync is a no-op; slog handlers write synchronously.
func (s *SlogAdapter) Sync() error { return nil }

func (s *SlogAdapter) log(level slog.Level, msg string, fields []Field) {
	ctx := context.Background()
	if !s.l.Enabled(ctx, level) {
		return
	}
	s.l.LogAttrs(ctx, level, msg, toAttrs(fields)...)
}

func toAttrs(fields []Field) []slog.Attr {
	attrs := make([]slog.Attr, len(fields))
	for i, f := range fields {
		attrs[i] = slog.Any(f.Key, f.Value)
	}
	return attrs
}
