package kusanagi

import (
	"sort"
	"sync"
)

// DefaultBinding is the name Amplify resolves in the package table.
const DefaultBinding = "square"

// Binding pairs a name with the transform currently bound to it.
type Binding struct {
	Name string
	Func Transform
}

// Table maps names to transforms. A name carries at most one binding:
// Bind installs a default that holds only while nothing stronger
// exists, Override replaces whatever is there. Resolve never fails; an
// unbound name yields the table's fallback.
//
// This is the linkage model made explicit: a Bind is a weak
// definition, an Override is the strong one that wins.
type Table struct {
	mu       sync.RWMutex
	bindings map[string]Transform
	fallback Transform
}

// NewTable creates a table whose unresolved names fall back to fb.
// A nil fb falls back to the identity transform.
func NewTable(fb Transform) *Table {
	if fb == nil {
		fb = func(x int) int { return x }
	}
	return &Table{
		bindings: make(map[string]Transform),
		fallback: fb,
	}
}

// Bind installs f under name only if the name is unbound.
// Reports whether the binding took effect.
func (t *Table) Bind(name string, f Transform) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.bindings[name]; ok {
		return false
	}
	t.bindings[name] = f
	return true
}

// Override installs f under name unconditionally and returns the
// previous binding, if any.
func (t *Table) Override(name string, f Transform) (Transform, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	prev, ok := t.bindings[name]
	t.bindings[name] = f
	return prev, ok
}

// Resolve returns the transform bound to name, or the fallback.
func (t *Table) Resolve(name string) Transform {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if f, ok := t.bindings[name]; ok {
		return f
	}
	return t.fallback
}

// Bound reports whether name has a binding.
func (t *Table) Bound(name string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.bindings[name]
	return ok
}

// Bindings returns a snapshot of the current bindings, sorted by name.
func (t *Table) Bindings() []Binding {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]Binding, 0, len(t.bindings))
	for name, f := range t.bindings {
		out = append(out, Binding{Name: name, Func: f})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Package-level default table. Amplify resolves against it.
var defaultTable = NewTable(nil)

func init() {
	defaultTable.Bind(DefaultBinding, Square)
}

// Bind installs a default binding in the package table.
func Bind(name string, f Transform) bool {
	return defaultTable.Bind(name, f)
}

// Override replaces a binding in the package table.
func Override(name string, f Transform) (Transform, bool) {
	return defaultTable.Override(name, f)
}

// Resolve looks up a binding in the package table.
func Resolve(name string) Transform {
	return defaultTable.Resolve(name)
}
