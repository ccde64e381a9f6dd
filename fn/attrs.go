package fn

import (
	"maps"
	"slices"

	"github.com/next-trace/scg-uikit/internal/clone"
)

// Attrs is a read-only bag of named values.
//
// The bag owns a deep copy of the map it was built from (nested
// map[string]any values included). Looking up a missing name yields the
// absence marker instead of failing.
type Attrs struct {
	attrs map[string]any
}

// NewAttrs builds a bag from kv. A nil or empty kv gives an empty bag.
func NewAttrs(kv map[string]any) Attrs {
	return Attrs{attrs: clone.Map(kv)}
}

// Call builds a bag from kv and invokes f with it, returning f's result.
// It adapts functions taking one object with named fields to call sites that
// have the fields at hand.
func Call[R any](f func(Attrs) R, kv map[string]any) R {
	return f(NewAttrs(kv))
}

// Get returns the value stored under name and whether it was present.
func (a Attrs) Get(name string) (any, bool) {
	v, ok := a.attrs[name]
	return v, ok
}

// Value returns the value stored under name, or nil when absent.
func (a Attrs) Value(name string) any {
	return a.attrs[name]
}

func (a Attrs) Has(name string) bool {
	_, ok := a.attrs[name]
	return ok
}

// Keys returns the stored names in sorted order.
func (a Attrs) Keys() []string {
	return slices.Sorted(maps.Keys(a.attrs))
}

func (a Attrs) Len() int { return len(a.attrs) }

// Lookup returns the value stored under name as a T. It reports false when the
// name is absent or holds a value of another type.
func Lookup[T any](a Attrs, name string) (T, bool) {
	v, ok := a.attrs[name].(T)
	return v, ok
}
