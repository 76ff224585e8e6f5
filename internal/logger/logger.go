// Package logger sets up the debug log. The wizard owns the terminal, so
// log records go to a file, never to stdout or stderr.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Config selects where and whether to log.
type Config struct {
	Path  string
	Debug bool
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// Setup opens the log file when Debug is set and returns the logger with a
// cleanup func closing the file. Without Debug, or on failure, the returned
// logger discards and cleanup is a no-op.
func Setup(cfg Config) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }
	if !cfg.Debug || cfg.Path == "" {
		return Discard(), noop, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return Discard(), noop, err
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return Discard(), noop, err
	}

	h := slog.NewJSONHandler(f, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			// Never log the stored password.
			if a.Key == "password" {
				a.Value = slog.StringValue("[redacted]")
			}
			return a
		},
	})

	l := slog.New(h)
	l.Info("logger.initialized", "path", cfg.Path)
	return l, f.Close, nil
}
