package core

import (
	"sync"
	"time"

	"github.com/aretw0/arbor/pkg/domain"
)

// StatusChangeCallback observes one status transition. It is invoked
// synchronously, in subscription order, without the node's guard lock.
type StatusChangeCallback func(ts time.Time, node *TreeNode, prev, next domain.NodeStatus)

// Subscription is a live registration of a StatusChangeCallback on a
// node. It must be released with Unsubscribe before the node is
// discarded; a leaked subscription is a contract violation by the
// caller.
type Subscription struct {
	node *TreeNode
	fn   StatusChangeCallback

	// deliverMu synchronizes delivery with release: Unsubscribe blocks
	// until an in-flight invocation returns, and no invocation starts
	// after it. Do not call Unsubscribe from inside the callback.
	deliverMu sync.Mutex
	released  bool
}

// SubscribeToStatusChange attaches callback to this node. The callback
// fires on every actual transition until the returned subscription is
// released.
func (n *TreeNode) SubscribeToStatusChange(callback StatusChangeCallback) *Subscription {
	sub := &Subscription{node: n, fn: callback}
	n.mu.Lock()
	n.subs = append(n.subs, sub)
	n.mu.Unlock()
	return sub
}

// Unsubscribe deregisters the callback. When it returns, the callback is
// guaranteed not to be invoked again, even if a status change was in
// flight. Calling it more than once is harmless.
func (s *Subscription) Unsubscribe() {
	s.deliverMu.Lock()
	s.released = true
	s.fn = nil
	s.deliverMu.Unlock()

	n := s.node
	n.mu.Lock()
	for i, sub := range n.subs {
		if sub == s {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			break
		}
	}
	n.mu.Unlock()
}

func (s *Subscription) deliver(ts time.Time, node *TreeNode, prev, next domain.NodeStatus) {
	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()
	if s.released {
		return
	}
	s.fn(ts, node, prev, next)
}
