// Package logging holds the slog constructors the library defaults to.
// Hosts that care about log routing inject their own *slog.Logger
// through core.Config or the runner options; these are the fallbacks.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates a diagnostics logger writing to Stderr, keeping library
// output away from whatever the host does with Stdout. The "error" key
// is shortened to "err" for consistency with the rest of the module.
func New(level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// NewNop returns a logger that discards everything. It is the default
// for nodes and runners constructed without a logger, so resolution
// diagnostics are opt-in.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
