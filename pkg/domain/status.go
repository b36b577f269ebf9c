package domain

// NodeStatus is the outcome of the most recent tick of a node.
type NodeStatus string

const (
	// StatusIdle is the initial state, and the state a node returns to
	// after being halted. It is never produced by tick logic.
	StatusIdle NodeStatus = "idle"
	// StatusRunning means the node has started but not finished its work.
	StatusRunning NodeStatus = "running"
	// StatusSuccess is the terminal state of a completed, successful tick.
	StatusSuccess NodeStatus = "success"
	// StatusFailure is the terminal state of a completed, failed tick.
	StatusFailure NodeStatus = "failure"
)

// Completed reports whether the status is terminal (Success or Failure).
func (s NodeStatus) Completed() bool {
	return s == StatusSuccess || s == StatusFailure
}

// Valid reports whether the status is anything other than Idle.
func (s NodeStatus) Valid() bool {
	return s == StatusRunning || s.Completed()
}

// NodeType categorizes a node for introspection. The core never branches
// on it; the tree-construction layer does.
type NodeType string

const (
	NodeTypeUndefined NodeType = ""
	NodeTypeAction    NodeType = "action"
	NodeTypeCondition NodeType = "condition"
	NodeTypeControl   NodeType = "control"
	NodeTypeDecorator NodeType = "decorator"
	NodeTypeSubtree   NodeType = "subtree"
)
