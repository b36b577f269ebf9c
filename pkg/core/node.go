// Package core implements the per-node execution contract every node
// variant builds on: the status state machine, the tick invocation
// protocol, typed port resolution against a shared blackboard, and the
// status-change notification machinery.
//
// Tree topology, composite semantics and tree construction live in
// layers above; the core only guarantees what a single node does.
package core

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
)

// TickFunc is the node-specific logic invoked by ExecuteTick. It runs to
// completion on the calling goroutine; "still working" is expressed by
// returning StatusRunning and being invoked again on a later pass.
//
// Errors are not intercepted by the core: they propagate to the driver,
// which owns the fatal-vs-recoverable policy. On error the returned
// status is not published.
type TickFunc func() (domain.NodeStatus, error)

// Node is the capability interface drivers and parent nodes hold
// children through. *TreeNode implements it; composite and decorator
// variants embed *TreeNode and may shadow Halt.
type Node interface {
	ExecuteTick() (domain.NodeStatus, error)
	Halt()
	Type() domain.NodeType
	Status() domain.NodeStatus
	Name() string
	UID() uint64
}

// Config carries the construction-time wiring of a node. It is copied on
// construction and never mutated afterwards.
type Config struct {
	// Blackboard is shared by every node of the tree. May be nil for
	// nodes whose ports are all inline literals.
	Blackboard ports.Blackboard

	// RegistrationID names the node's registered type. Opaque to the
	// core; used for introspection and logging only.
	RegistrationID string

	// Remapping maps each node-local port key to its remap expression:
	// "=" (blackboard key equals the port key), a quoted literal, or a
	// verbatim blackboard key.
	Remapping map[string]string

	// Logger receives port-resolution diagnostics. Defaults to a no-op
	// logger.
	Logger *slog.Logger
}

// TreeNode is the concrete base every node variant is built from. Its
// status may be read, and its subscriptions mutated, from goroutines
// other than the one ticking it.
type TreeNode struct {
	name     string
	uid      uint64
	nodeType domain.NodeType
	cfg      Config
	logger   *slog.Logger

	tick TickFunc
	halt func()

	mu      sync.Mutex
	status  domain.NodeStatus
	validCh chan struct{}
	subs    []*Subscription

	// Transitions queue up under mu and a single goroutine drains them
	// in order, so delivery order matches transition order while
	// callbacks run without the guard lock.
	pending    []notification
	delivering bool
}

type notification struct {
	ts   time.Time
	prev domain.NodeStatus
	next domain.NodeStatus
	subs []*Subscription
}

// Option customizes a TreeNode at construction.
type Option func(*TreeNode)

// WithHalt registers node-specific halt logic, run before the node is
// reset to Idle. Composite variants use it to halt started children and
// release running sub-state. It must not block.
func WithHalt(fn func()) Option {
	return func(n *TreeNode) {
		n.halt = fn
	}
}

// NewTreeNode constructs a node with its immutable identity and
// configuration. The UID is drawn from a process-wide counter and is
// distinct across all nodes constructed in this process, including
// concurrently.
func NewTreeNode(name string, nodeType domain.NodeType, cfg Config, tick TickFunc, opts ...Option) *TreeNode {
	if cfg.Remapping != nil {
		remapping := make(map[string]string, len(cfg.Remapping))
		for k, v := range cfg.Remapping {
			remapping[k] = v
		}
		cfg.Remapping = remapping
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	n := &TreeNode{
		name:     name,
		uid:      nextUID(),
		nodeType: nodeType,
		cfg:      cfg,
		logger:   logger,
		tick:     tick,
		status:   domain.StatusIdle,
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Name returns the user-assigned instance label. Not required unique.
func (n *TreeNode) Name() string {
	return n.name
}

// UID returns the process-wide unique identifier of this instance.
func (n *TreeNode) UID() uint64 {
	return n.uid
}

// RegistrationID returns the ID this node's type was registered under.
func (n *TreeNode) RegistrationID() string {
	return n.cfg.RegistrationID
}

// Type returns the introspection category of the node.
func (n *TreeNode) Type() domain.NodeType {
	return n.nodeType
}

// Blackboard returns the shared store this node resolves ports against.
func (n *TreeNode) Blackboard() ports.Blackboard {
	return n.cfg.Blackboard
}

// Status returns the current status under the guard lock.
func (n *TreeNode) Status() domain.NodeStatus {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.status
}

// IsHalted reports whether the node is Idle.
func (n *TreeNode) IsHalted() bool {
	return n.Status() == domain.StatusIdle
}

// SetStatus publishes a new status. If it differs from the current value
// the change is recorded, every blocked WaitValidStatus caller is woken,
// and every live subscription is invoked in subscription order with the
// transition. Setting the current value again is a no-op.
//
// Callbacks run without the guard lock, so they may re-enter the node
// (e.g. call Status). Delivery order matches transition order; a
// callback never observes a status older than the transition that
// triggered it.
func (n *TreeNode) SetStatus(next domain.NodeStatus) {
	n.mu.Lock()
	prev := n.status
	if prev == next {
		n.mu.Unlock()
		return
	}
	n.status = next

	var wake chan struct{}
	if next != domain.StatusIdle && n.validCh != nil {
		wake = n.validCh
		n.validCh = nil
	}

	note := notification{
		ts:   time.Now(),
		prev: prev,
		next: next,
		subs: make([]*Subscription, len(n.subs)),
	}
	copy(note.subs, n.subs)
	n.pending = append(n.pending, note)

	// Another goroutine mid-delivery owns the queue; it will pick this
	// transition up in order.
	drain := !n.delivering
	if drain {
		n.delivering = true
	}
	n.mu.Unlock()

	if wake != nil {
		close(wake)
	}
	if drain {
		n.drainNotifications()
	}
}

func (n *TreeNode) drainNotifications() {
	for {
		n.mu.Lock()
		if len(n.pending) == 0 {
			n.delivering = false
			n.mu.Unlock()
			return
		}
		note := n.pending[0]
		n.pending = n.pending[1:]
		n.mu.Unlock()

		for _, sub := range note.subs {
			sub.deliver(note.ts, n, note.prev, note.next)
		}
	}
}

// ExecuteTick is the entry point drivers use. It invokes the node's tick
// logic, publishes the resulting status through SetStatus, and returns
// it. Whether re-invocation is legal while Running or after a terminal
// status is the tick logic's own call; the core imposes no restriction.
func (n *TreeNode) ExecuteTick() (domain.NodeStatus, error) {
	status, err := n.tick()
	if err != nil {
		return status, err
	}
	n.SetStatus(status)
	return status, nil
}

// Halt forces the node back to Idle, running any node-specific halt
// logic first. Safe to call at any time, idempotent, non-blocking.
func (n *TreeNode) Halt() {
	if n.halt != nil {
		n.halt()
	}
	n.SetStatus(domain.StatusIdle)
}

// WaitValidStatus blocks until the status is anything other than Idle,
// then returns it. If the node is already non-Idle it returns
// immediately. A caller abandoning the wait cancels ctx; the guard state
// stays intact for other waiters.
func (n *TreeNode) WaitValidStatus(ctx context.Context) (domain.NodeStatus, error) {
	for {
		n.mu.Lock()
		if n.status != domain.StatusIdle {
			status := n.status
			n.mu.Unlock()
			return status, nil
		}
		if n.validCh == nil {
			n.validCh = make(chan struct{})
		}
		ch := n.validCh
		n.mu.Unlock()

		select {
		case <-ctx.Done():
			return domain.StatusIdle, ctx.Err()
		case <-ch:
			// Re-check: the node may have been halted again between the
			// wake and this read.
		}
	}
}
