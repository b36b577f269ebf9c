package core

import "sync/atomic"

// uidCounter is the only process-wide mutable state in the core. Atomic
// so tree construction can run on several goroutines.
var uidCounter atomic.Uint64

func nextUID() uint64 {
	return uidCounter.Add(1)
}
