// Package logging sets up the file logger. The terminal belongs to the UI,
// so logs never go to stdout or stderr while it runs.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// DefaultPath returns $XDG_STATE_HOME/cuteplay/cuteplay.log.
func DefaultPath() (string, error) {
	return xdg.StateFile(filepath.Join("cuteplay", "cuteplay.log"))
}

// New creates a logger with timestamps at the given level.
// An unknown level falls back to info.
func New(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{ReportTimestamp: true})
	logger.SetLevel(ParseLevel(level))
	return logger
}

// ParseLevel parses a level name, defaulting to info.
func ParseLevel(level string) log.Level {
	if level == "" {
		return log.InfoLevel
	}
	l, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel
	}
	return l
}

// OpenFile opens path for appending (DefaultPath when empty) and returns a
// logger writing to it together with the file to close on exit.
func OpenFile(path, level string) (*log.Logger, io.Closer, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, nil, fmt.Errorf("resolve log path: %w", err)
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level), f, nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}

// Component returns a child logger tagged with the component name.
func Component(l *log.Logger, name string) *log.Logger {
	return l.With("component", name)
}
