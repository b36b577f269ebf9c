package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/arbor/pkg/core"
	"github.com/aretw0/arbor/pkg/domain"
)

// StatusMetrics counts status transitions per node for Prometheus
// scraping. One instance can observe any number of nodes.
type StatusMetrics struct {
	transitions *prometheus.CounterVec
}

// NewStatusMetrics creates the collector and registers it with reg.
// Pass prometheus.DefaultRegisterer for the default registry.
func NewStatusMetrics(reg prometheus.Registerer) (*StatusMetrics, error) {
	m := &StatusMetrics{
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbor_status_transitions_total",
				Help: "Total number of node status transitions",
			},
			[]string{"node", "from", "to"},
		),
	}
	if reg != nil {
		if err := reg.Register(m.transitions); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Observe subscribes the collector to n. Release the returned
// subscription before discarding the node.
func (m *StatusMetrics) Observe(n *core.TreeNode) *core.Subscription {
	return n.SubscribeToStatusChange(func(_ time.Time, node *core.TreeNode, prev, next domain.NodeStatus) {
		m.transitions.WithLabelValues(node.Name(), string(prev), string(next)).Inc()
	})
}
