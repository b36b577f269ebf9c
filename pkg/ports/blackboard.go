// Package ports defines the interfaces the node core consumes, keeping
// the core decoupled from concrete adapters (Hexagonal Architecture).
package ports

// Blackboard is the shared key/value data plane nodes use to pass data
// to one another across a tree. Entries are type-erased; port resolution
// in pkg/core handles the typed extraction.
//
// Implementations must be safe for concurrent use by multiple nodes and
// threads. One blackboard instance is typically shared by every node of
// a tree, and must outlive the longest-lived node referencing it.
type Blackboard interface {
	// Get returns the entry stored under key, or false if absent.
	Get(key string) (any, bool)

	// Set stores value under key, creating or overwriting.
	Set(key string, value any)

	// Keys returns the keys currently present, in no particular order.
	Keys() []string

	// Clear removes every entry.
	Clear()
}
