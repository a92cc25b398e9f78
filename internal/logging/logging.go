// SPDX-License-Identifier: MIT

// Package logging builds the slog.Logger used by the lvmat command line.
//
// Output goes to stderr by default, as text; JSON is opt-in. The same logger
// can be handed to matrix.SetLogger to trace copy-on-write materializations
// at debug level.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level is the minimum severity that reaches the output.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns "DEBUG", "INFO", "WARN", "ERROR" or "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) slogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel accepts debug, info, warn/warning and error, case-insensitively.
// The empty string means info.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}

	return LevelInfo, fmt.Errorf("logging: unknown level %q", s)
}

// Config selects level, format and destination. The zero value logs Info+
// text to stderr.
type Config struct {
	Level  Level
	JSON   bool
	Quiet  bool      // discard everything
	Output io.Writer // nil means os.Stderr
}

// New returns a logger for cfg.
func New(cfg Config) *slog.Logger {
	if cfg.Quiet {
		return slog.New(slog.DiscardHandler)
	}
	w := cfg.Output
	if w == nil {
		w = os.Stderr
	}
	hopts := &slog.HandlerOptions{Level: cfg.Level.slogLevel()}
	if cfg.JSON {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}

	return slog.New(slog.NewTextHandler(w, hopts))
}
