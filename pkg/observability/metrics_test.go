package observability_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/aretw0/arbor/pkg/core"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/observability"
)

func newNode(name string) *core.TreeNode {
	return core.NewTreeNode(name, domain.NodeTypeAction, core.Config{},
		func() (domain.NodeStatus, error) {
			return domain.StatusSuccess, nil
		})
}

func TestStatusMetrics_CountsTransitions(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := observability.NewStatusMetrics(reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n := newNode("walker")
	sub := m.Observe(n)
	defer sub.Unsubscribe()

	n.SetStatus(domain.StatusRunning)
	n.SetStatus(domain.StatusRunning) // no-op, must not count
	n.SetStatus(domain.StatusSuccess)

	count, err := testutil.GatherAndCount(reg, "arbor_status_transitions_total")
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	// idle->running and running->success; the repeated Running write must
	// not create a series.
	if count != 2 {
		t.Errorf("expected 2 labeled series, got %d", count)
	}
}

func TestStatusMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := observability.NewStatusMetrics(reg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := observability.NewStatusMetrics(reg); err == nil {
		t.Error("expected duplicate registration error, got nil")
	}
}

func TestLogStatusChanges(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	n := newNode("logged")
	sub := observability.LogStatusChanges(n, logger)
	defer sub.Unsubscribe()

	n.SetStatus(domain.StatusRunning)

	out := buf.String()
	if !strings.Contains(out, "status change") {
		t.Errorf("missing log line, got %q", out)
	}
	if !strings.Contains(out, "to=running") {
		t.Errorf("missing transition detail, got %q", out)
	}
	if !strings.Contains(out, "node=logged") {
		t.Errorf("missing node name, got %q", out)
	}
}
