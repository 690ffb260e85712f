package app

import (
	"log/slog"
	"os"
)

const (
	envLocal = "local"
	envDebug = "debug"
)

func setupLogger(env string) *slog.Logger {
	var logger *slog.Logger

	switch env {
	case envLocal:
		logger = slog.New(slog.NewTextHandler(os.Stdout, handlerOptions(slog.LevelInfo)))
	case envDebug:
		logger = slog.New(slog.NewJSONHandler(os.Stdout, handlerOptions(slog.LevelDebug)))
	default:
		logger = slog.New(slog.NewJSONHandler(os.Stdout, handlerOptions(slog.LevelInfo)))
	}

	return logger
}

func handlerOptions(level slog.Level) *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Key = "date"
			}
			return a
		},
	}
}
