package ports

import (
	"fmt"
	"sync"
	"testing"
)

// RunBlackboardContract verifies that an adapter complies with the
// Blackboard semantics the node core relies on. Adapter packages call it
// from their own tests.
//
// Values are plain strings so the suite holds for adapters that
// round-trip entries through a textual encoding (e.g. Redis).
func RunBlackboardContract(t *testing.T, bb Blackboard) {
	t.Helper()

	t.Run("Get_Missing", func(t *testing.T) {
		if _, ok := bb.Get("absent"); ok {
			t.Error("expected miss for absent key")
		}
	})

	t.Run("Set_Get_Roundtrip", func(t *testing.T) {
		bb.Set("speed", "100")
		v, ok := bb.Get("speed")
		if !ok {
			t.Fatal("expected hit after Set")
		}
		if fmt.Sprint(v) != "100" {
			t.Errorf("got %v, want 100", v)
		}
	})

	t.Run("Set_Overwrites", func(t *testing.T) {
		bb.Set("speed", "100")
		bb.Set("speed", "200")
		v, _ := bb.Get("speed")
		if fmt.Sprint(v) != "200" {
			t.Errorf("got %v, want 200", v)
		}
	})

	t.Run("Keys", func(t *testing.T) {
		bb.Clear()
		bb.Set("a", "1")
		bb.Set("b", "2")
		keys := bb.Keys()
		if len(keys) != 2 {
			t.Fatalf("expected 2 keys, got %d: %v", len(keys), keys)
		}
		lookup := map[string]bool{}
		for _, k := range keys {
			lookup[k] = true
		}
		if !lookup["a"] || !lookup["b"] {
			t.Errorf("missing keys in %v", keys)
		}
	})

	t.Run("Clear", func(t *testing.T) {
		bb.Set("a", "1")
		bb.Clear()
		if _, ok := bb.Get("a"); ok {
			t.Error("expected miss after Clear")
		}
		if len(bb.Keys()) != 0 {
			t.Error("expected no keys after Clear")
		}
	})

	t.Run("Concurrent_Access", func(t *testing.T) {
		bb.Clear()
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				key := fmt.Sprintf("key-%d", i)
				for j := 0; j < 50; j++ {
					bb.Set(key, fmt.Sprint(j))
					bb.Get(key)
				}
			}(i)
		}
		wg.Wait()
		if got := len(bb.Keys()); got != 8 {
			t.Errorf("expected 8 keys, got %d", got)
		}
	})
}
