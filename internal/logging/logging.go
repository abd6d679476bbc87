// Package logging builds the process slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", s)
	}
	return lvl, nil
}

// Options selects where logs go. With a File, records are JSON lines appended
// to it. Without one they go to Fallback as text, or nowhere when Fallback is nil
// (the interactive board owns the terminal).
type Options struct {
	File     string
	Level    string
	Fallback io.Writer
}

// Setup installs the default logger and returns a func that releases its file.
func Setup(opts Options) (func() error, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	hopts := &slog.HandlerOptions{Level: lvl}

	if path := strings.TrimSpace(opts.File); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
		slog.SetDefault(slog.New(slog.NewJSONHandler(f, hopts)))
		return f.Close, nil
	}

	w := opts.Fallback
	if w == nil {
		w = io.Discard
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, hopts)))
	return func() error { return nil }, nil
}
