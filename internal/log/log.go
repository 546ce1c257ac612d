// SPDX-License-Identifier: MIT

// Package log builds the *slog.Logger used by the densemat command.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config selects the sink, encoding and threshold of a Logger.
type Config struct {
	Output string // "stdout", "stderr" or "file"
	Format string // "json" or "text"
	File   string // log file path, required when Output is "file"
	Level  string // debug, info, warn, error

	// Stdout and Stderr replace os.Stdout/os.Stderr when non-nil.
	Stdout io.Writer
	Stderr io.Writer
}

// NewLogger creates a Logger from cfg. For Output "file" the file is opened
// for append. The returned func releases the file handle and is never nil on
// success.
func NewLogger(cfg Config) (*slog.Logger, func(), error) {
	var w io.Writer
	var closer io.Closer
	switch strings.ToLower(cfg.Output) {
	case "stdout":
		w = cfg.Stdout
		if w == nil {
			w = os.Stdout
		}
	case "stderr":
		w = cfg.Stderr
		if w == nil {
			w = os.Stderr
		}
	case "file":
		if cfg.File == "" {
			return nil, nil, fmt.Errorf("log output is file but no file name given")
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to create log file(%s): %w", cfg.File, err)
		}
		w = f
		closer = f
	default:
		return nil, nil, fmt.Errorf("unsupported log output: %s", cfg.Output)
	}

	logger, err := New(w, cfg.Format, cfg.Level)
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, nil, err
	}
	cleanup := func() {
		if closer != nil {
			_ = closer.Close()
		}
	}

	return logger, cleanup, nil
}

// New creates a Logger writing to w with the given format and level.
func New(w io.Writer, format, level string) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	ho := &slog.HandlerOptions{
		AddSource: true,
		Level:     lvl,
	}

	var handler slog.Handler
	switch strings.ToLower(format) {
	case "json":
		handler = slog.NewJSONHandler(w, ho)
	case "text":
		handler = slog.NewTextHandler(w, ho)
	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}

	return slog.New(handler), nil
}

// ParseLevel maps debug/info/warn/error (any case) to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unsupported log level: %s", level)
	}
}
