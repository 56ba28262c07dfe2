package logging

import (
	"io"
	"log/slog"
	"os"
)

// Setup installs the process-wide slog default. verbose lowers the
// level to Debug; format selects "text" (default) or "json" handlers.
func Setup(verbose bool, format string, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// For returns a logger scoped to one component of the toolkit.
func For(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}
