// Package runner drives a root node: the single control loop that calls
// ExecuteTick until a terminal status. It defines no tree topology; the
// root may be a lone leaf or the top of a composite structure built by
// higher layers.
package runner

import (
	"context"
	"log/slog"
	"time"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/core"
	"github.com/aretw0/arbor/pkg/domain"
)

// DefaultInterval is the pacing between ticks while the root is Running.
const DefaultInterval = 10 * time.Millisecond

// Runner handles the execution loop over a root node.
type Runner struct {
	interval time.Duration
	logger   *slog.Logger
}

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithInterval sets the pause between ticks while the root is Running.
func WithInterval(interval time.Duration) Option {
	return func(r *Runner) {
		r.interval = interval
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a new Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		interval: DefaultInterval,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run ticks root until it reports a status other than Running, and
// returns that status. Tick errors are not intercepted: they end the
// loop and propagate to the caller, which owns the fatal-vs-recoverable
// policy. If ctx is cancelled the root is halted and ctx's error is
// returned with StatusIdle.
func (r *Runner) Run(ctx context.Context, root core.Node) (domain.NodeStatus, error) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		status, err := root.ExecuteTick()
		if err != nil {
			r.logger.Error("tick failed", "node", root.Name(), "err", err)
			return status, err
		}
		r.logger.Debug("tick", "node", root.Name(), "status", status)

		if status != domain.StatusRunning {
			return status, nil
		}

		select {
		case <-ctx.Done():
			root.Halt()
			return domain.StatusIdle, ctx.Err()
		case <-ticker.C:
		}
	}
}
