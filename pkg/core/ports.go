package core

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/arbor/pkg/convert"
	"github.com/aretw0/arbor/pkg/domain"
)

// remapSelf is the remap token meaning "the blackboard key equals the
// port key itself".
const remapSelf = "="

// IsLiteral reports whether a remap expression is an inline literal
// rather than a blackboard key. Convention: the expression is wrapped in
// single quotes, e.g. "'5'". Single quotes were chosen because remap
// tables usually travel inside double-quoted XML/YAML attributes.
//
// Pure predicate: no I/O, no side effects.
func IsLiteral(expr string) bool {
	return len(expr) >= 2 && expr[0] == '\'' && expr[len(expr)-1] == '\''
}

// GetInput resolves the port named key and returns its value as a T.
//
// Resolution order: the port must be declared in the remapping table;
// "=" reads the blackboard entry named after the port key itself; a
// quoted literal is parsed on demand via pkg/convert without consulting
// the blackboard; anything else is used verbatim as a blackboard key.
// String-typed entries read from the blackboard are parsed into T when T
// is not a string; other entries go through a checked extraction.
//
// Every failure is returned as a *domain.PortError wrapping one of the
// resolution sentinels; GetInput never panics.
func GetInput[T any](n *TreeNode, key string) (T, error) {
	var zero T

	expr, ok := n.cfg.Remapping[key]
	if !ok {
		return zero, n.portError(key, domain.ErrUnmappedPort)
	}

	storeKey := expr
	switch {
	case expr == remapSelf:
		storeKey = key
	case IsLiteral(expr):
		v, err := convert.FromString[T](expr[1 : len(expr)-1])
		if err != nil {
			return zero, n.portError(key, fmt.Errorf("%w: %v", domain.ErrConversion, err))
		}
		return v, nil
	}

	bb := n.cfg.Blackboard
	if bb == nil {
		return zero, n.portError(key, domain.ErrBlackboardUnset)
	}

	raw, found := bb.Get(storeKey)
	if !found {
		return zero, n.portError(key, fmt.Errorf("%w: %q", domain.ErrEntryNotFound, storeKey))
	}

	// Entries stored as text are parsed unless the port wants text.
	if text, isText := raw.(string); isText {
		if _, wantsText := any(zero).(string); !wantsText {
			v, err := convert.FromString[T](text)
			if err != nil {
				return zero, n.portError(key, fmt.Errorf("%w: %v", domain.ErrConversion, err))
			}
			return v, nil
		}
	}

	if v, ok := raw.(T); ok {
		return v, nil
	}

	// Map-shaped entries (e.g. decoded JSON) can still satisfy struct or
	// map ports; numeric entries of a compatible kind are converted.
	var out T
	if err := mapstructure.Decode(raw, &out); err != nil {
		return zero, n.portError(key, fmt.Errorf("%w: have %T", domain.ErrTypeMismatch, raw))
	}
	return out, nil
}

// SetOutput resolves the port named key and writes value to the
// blackboard at the resolved key, creating or overwriting the entry.
// Ports bound to an inline literal are read-only.
func SetOutput[T any](n *TreeNode, key string, value T) error {
	expr, ok := n.cfg.Remapping[key]
	if !ok {
		return n.portError(key, domain.ErrUnmappedPort)
	}

	storeKey := expr
	switch {
	case expr == remapSelf:
		storeKey = key
	case IsLiteral(expr):
		return n.portError(key, domain.ErrReadOnlyPort)
	}

	bb := n.cfg.Blackboard
	if bb == nil {
		return n.portError(key, domain.ErrBlackboardUnset)
	}

	bb.Set(storeKey, value)
	return nil
}

// portError wraps a resolution failure with node context and emits the
// diagnostic. Resolution failures are recoverable by design; the caller
// decides whether the tick can proceed without the value.
func (n *TreeNode) portError(key string, err error) error {
	perr := &domain.PortError{Node: n.name, Port: key, Err: err}
	n.logger.Warn("port resolution failed",
		"node", n.name,
		"registration_id", n.cfg.RegistrationID,
		"port", key,
		"err", err,
	)
	return perr
}
