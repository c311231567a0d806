package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Logger interface {
	Info(msg string)
	Error(msg string, err error)
	Debug(msg string)
	// With returns a logger annotated with the given key/value pairs.
	With(args ...any) Logger
}

type UnoLogger struct {
	logger *slog.Logger
}

// New returns a debug-level logger writing to stdout.
func New(loggerName string) Logger {
	return NewWithLevel(loggerName, slog.LevelDebug, os.Stdout)
}

func NewWithLevel(loggerName string, level slog.Level, out io.Writer) Logger {
	handler := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	})
	attrs := []slog.Attr{slog.String("logger", loggerName)}
	h := handler.WithAttrs(attrs)
	return UnoLogger{slog.New(h)}
}

// ParseLevel maps a configured level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
}

func (ul UnoLogger) Info(msg string) {
	ul.logger.Info(msg)
}

func (ul UnoLogger) Error(msg string, err error) {
	if err != nil {
		e := slog.String("error", err.Error())
		ul.logger.Error(msg, e)
		return
	}
	ul.logger.Error(msg)
}

func (ul UnoLogger) Debug(msg string) {
	ul.logger.Debug(msg)
}

func (ul UnoLogger) With(args ...any) Logger {
	return UnoLogger{ul.logger.With(args...)}
}
