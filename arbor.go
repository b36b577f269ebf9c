package arbor

import (
	"github.com/aretw0/arbor/pkg/core"
	"github.com/aretw0/arbor/pkg/domain"
)

// Status is the outcome of a tick. Alias of domain.NodeStatus so simple
// hosts only import the root package.
type Status = domain.NodeStatus

// Re-exported statuses so simple hosts only import the root package.
const (
	StatusIdle    = domain.StatusIdle
	StatusRunning = domain.StatusRunning
	StatusSuccess = domain.StatusSuccess
	StatusFailure = domain.StatusFailure
)

// NewAction wraps tick into a leaf action node. The tick logic owns its
// sub-state and decides what re-invocation means; use core.WithHalt to
// release that sub-state when the node is halted.
func NewAction(name string, cfg core.Config, tick core.TickFunc, opts ...core.Option) *core.TreeNode {
	return core.NewTreeNode(name, domain.NodeTypeAction, cfg, tick, opts...)
}

// NewCondition wraps a predicate into a leaf condition node: Success
// when the predicate holds, Failure otherwise. Conditions never report
// Running.
func NewCondition(name string, cfg core.Config, predicate func() (bool, error), opts ...core.Option) *core.TreeNode {
	return core.NewTreeNode(name, domain.NodeTypeCondition, cfg, func() (domain.NodeStatus, error) {
		ok, err := predicate()
		if err != nil {
			return domain.StatusFailure, err
		}
		if ok {
			return domain.StatusSuccess, nil
		}
		return domain.StatusFailure, nil
	}, opts...)
}
