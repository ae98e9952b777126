package common

// OrderedSet is a string set that preserves first-insertion order.
// The zero value is not usable; construct with NewOrderedSet.
type OrderedSet struct {
	seen  map[string]struct{}
	order []string
}

// NewOrderedSet creates an empty OrderedSet.
func NewOrderedSet() *OrderedSet {
	return &OrderedSet{seen: make(map[string]struct{})}
}

// Add inserts v and reports whether it was newly added.
func (s *OrderedSet) Add(v string) bool {
	if _, ok := s.seen[v]; ok {
		return false
	}

	s.seen[v] = struct{}{}
	s.order = append(s.order, v)

	return true
}

// Has reports whether v is in the set.
func (s *OrderedSet) Has(v string) bool {
	_, ok := s.seen[v]
	return ok
}

// Len returns the number of elements.
func (s *OrderedSet) Len() int {
	return len(s.order)
}

// Values returns the elements in insertion order. The returned slice is a
// copy.
func (s *OrderedSet) Values() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)

	return out
}
