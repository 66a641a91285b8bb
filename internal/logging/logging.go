// Package logging configures the process-wide slog logger for the CLI.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Options controls logger construction.
type Options struct {
	// Verbosity is one of debug, info, warn or error, in any casing.
	// Unrecognized values fall back to info.
	Verbosity string

	// Writer receives log output. Defaults to os.Stderr.
	Writer io.Writer
}

// Setup builds a tint-backed slog logger, installs it as the default, and
// returns it. Color is enabled only when the writer is a terminal.
func Setup(o Options) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(o.Verbosity) {
	case "debug":
		level = slog.LevelDebug
	case "", "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	w := o.Writer
	if w == nil {
		w = os.Stderr
	}
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}

	logger := slog.New(
		tint.NewHandler(w, &tint.Options{
			NoColor:   noColor,
			Level:     level,
			AddSource: level < slog.LevelInfo,
		}),
	)
	slog.SetDefault(logger)
	return logger
}
