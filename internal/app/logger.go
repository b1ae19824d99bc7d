package app

import (
	"io"
	"log/slog"
	"os"

	"laundry-service/internal/config"
	"laundry-service/internal/logx"
)

// NewLogger returns a JSON logger. Development builds also log debug records.
func NewLogger(cfg *config.Config) logx.Logger {
	return newLogger(os.Stdout, cfg)
}

func newLogger(w io.Writer, cfg *config.Config) logx.Logger {
	level := slog.LevelInfo
	if cfg != nil && !cfg.Production() {
		level = slog.LevelDebug
	}
	base := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	return logx.NewSlogAdapter(base).With(logx.String("service", "service-laundry"))
}
