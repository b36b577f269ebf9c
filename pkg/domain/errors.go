package domain

import (
	"errors"
	"fmt"
)

// ErrUnmappedPort is returned when a port key was never declared in the
// node's remapping table.
var ErrUnmappedPort = errors.New("port not mapped")

// ErrBlackboardUnset is returned when a port resolves to a blackboard key
// but the node was constructed without a blackboard.
var ErrBlackboardUnset = errors.New("blackboard not set")

// ErrEntryNotFound is returned when the blackboard has no entry for the
// resolved key.
var ErrEntryNotFound = errors.New("blackboard entry not found")

// ErrTypeMismatch is returned when a stored entry cannot be extracted
// into the requested type and is not text-convertible.
var ErrTypeMismatch = errors.New("type mismatch")

// ErrConversion is returned when text-to-typed-value parsing fails.
var ErrConversion = errors.New("conversion failed")

// ErrReadOnlyPort is returned when a write is attempted on a port bound
// to an inline literal.
var ErrReadOnlyPort = errors.New("port is bound to a literal and read-only")

// PortError wraps one of the resolution sentinels above with the node and
// port it occurred on. Use errors.Is to match the underlying kind.
type PortError struct {
	Node string
	Port string
	Err  error
}

func (e *PortError) Error() string {
	return fmt.Sprintf("port %q on node %q: %v", e.Port, e.Node, e.Err)
}

func (e *PortError) Unwrap() error {
	return e.Err
}
