// Package logging configures the slog loggers used by the analysis modules.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init installs the process-wide slog handler used by every category
// logger. Format is the logging.format of the job: "json" selects
// slog.JSONHandler, anything else slog.TextHandler. Records go to out, or to
// stderr when out is nil.
func Init(level slog.Level, format string, out ...io.Writer) {
	w := io.Writer(os.Stderr)
	if len(out) > 0 && out[0] != nil {
		w = out[0]
	}

	opts := &slog.HandlerOptions{Level: level}
	handler := slog.Handler(slog.NewTextHandler(w, opts))
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// New returns a logger tagged with the module category, e.g.
// "GEMCSCSegmentEfficiencyAnalyzer".
func New(category string) *slog.Logger {
	return slog.Default().With(slog.String("category", category))
}

// ParseLevel parses "debug", "info", "warn" or "error", case insensitive.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("logging: invalid level %q: %w", s, err)
	}
	return level, nil
}
