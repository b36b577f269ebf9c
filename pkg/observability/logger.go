// Package observability layers loggers and metrics on top of the core's
// status-change signal. Everything here is an ordinary subscriber; the
// core stays unaware of it.
package observability

import (
	"log/slog"
	"time"

	"github.com/aretw0/arbor/pkg/core"
	"github.com/aretw0/arbor/pkg/domain"
)

// LogStatusChanges subscribes a structured logger to every status
// transition of n. Release the returned subscription before discarding
// the node.
func LogStatusChanges(n *core.TreeNode, logger *slog.Logger) *core.Subscription {
	return n.SubscribeToStatusChange(func(ts time.Time, node *core.TreeNode, prev, next domain.NodeStatus) {
		logger.Info("status change",
			"ts", ts,
			"node", node.Name(),
			"uid", node.UID(),
			"from", prev,
			"to", next,
		)
	})
}
