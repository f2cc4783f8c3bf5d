package api

import (
	"context"
	"log/slog"
)

// LevelTrace sits just above slog.LevelInfo and carries per-stage progress.
const LevelTrace slog.Level = slog.LevelInfo + 1

func trace(logger *slog.Logger, msg string, args ...any) {
	logger.Log(context.Background(), LevelTrace, msg, args...)
}
