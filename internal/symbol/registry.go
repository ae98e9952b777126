package symbol

import (
	"sort"

	"viewgen/internal/statement"
)

// Descriptor is a mutable metadata slot for a declared macro or view. The
// registry hands out the slot; the statement processor records whatever
// facts it discovers. The registry itself validates nothing, including
// duplicate definitions.
type Descriptor struct {
	// Definition is the statement that first defined the symbol, nil
	// until a definition is seen.
	Definition *statement.Statement
	// Params is the declared parameter count.
	Params int
	// Uses counts references seen during processing.
	Uses int
}

// Registry maps symbol names to descriptors, creating empty slots on first
// access.
type Registry struct {
	slots map[string]*Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{slots: make(map[string]*Descriptor)}
}

// Get returns the descriptor for name, creating and storing an empty one
// if the name has not been seen before. Repeated calls return the same
// slot for in-place mutation.
func (r *Registry) Get(name string) *Descriptor {
	if d, ok := r.slots[name]; ok {
		return d
	}

	d := &Descriptor{}
	r.slots[name] = d

	return d
}

// Has reports whether a slot exists for name without creating one.
func (r *Registry) Has(name string) bool {
	_, ok := r.slots[name]
	return ok
}

// Len returns the number of registered symbols.
func (r *Registry) Len() int {
	return len(r.slots)
}

// Names returns all registered symbol names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.slots))
	for name := range r.slots {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
