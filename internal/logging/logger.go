// Package logging настраивает глобальный структурированный логгер.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel переводит уровень из конфигурации в slog.Level; неизвестные
// значения дают INFO
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// New создает JSON логгер. Пустой w означает stdout.
func New(level string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(level),
		AddSource: ParseLevel(level) == slog.LevelDebug,
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// Setup создает логгер и делает его логгером по умолчанию, чтобы компоненты,
// получающие логгер через slog.Default().With("component", ...), писали в него
func Setup(level string, w io.Writer) *slog.Logger {
	logger := New(level, w)
	slog.SetDefault(logger)
	return logger
}
