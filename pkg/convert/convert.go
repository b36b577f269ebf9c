// Package convert is the pluggable text-to-typed-value parser used by
// port resolution. Nodes receive inline literals and string-typed
// blackboard entries as text; this package turns that text into the
// type the port asks for.
package convert

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Parser converts the textual form of a value into its typed form.
type Parser func(text string) (any, error)

var (
	mu      sync.RWMutex
	parsers = map[reflect.Type]Parser{}
)

// Register installs a parser for type T, replacing any previous one.
// Call it from an init function before the tree starts ticking.
func Register[T any](fn func(text string) (T, error)) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	mu.Lock()
	defer mu.Unlock()
	parsers[t] = func(text string) (any, error) {
		return fn(text)
	}
}

// FromString parses text into T using the registered parser.
// It fails if no parser is registered for T or the text is malformed.
func FromString[T any](text string) (T, error) {
	var zero T
	t := reflect.TypeOf((*T)(nil)).Elem()
	mu.RLock()
	fn, ok := parsers[t]
	mu.RUnlock()
	if !ok {
		return zero, fmt.Errorf("no parser registered for %s", t)
	}
	v, err := fn(text)
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("parser for %s returned %T", t, v)
	}
	return out, nil
}

func init() {
	Register(func(text string) (string, error) {
		return text, nil
	})
	Register(func(text string) (int, error) {
		return strconv.Atoi(text)
	})
	Register(func(text string) (int64, error) {
		return strconv.ParseInt(text, 10, 64)
	})
	Register(func(text string) (uint64, error) {
		return strconv.ParseUint(text, 10, 64)
	})
	Register(func(text string) (float64, error) {
		return strconv.ParseFloat(text, 64)
	})
	Register(func(text string) (bool, error) {
		return strconv.ParseBool(text)
	})
	Register(func(text string) (time.Duration, error) {
		return time.ParseDuration(text)
	})
	// Lists use ';' so they survive environments where ',' is already
	// significant (XML attributes, CSV-ish configs).
	Register(func(text string) ([]string, error) {
		if text == "" {
			return nil, nil
		}
		return strings.Split(text, ";"), nil
	})
}
