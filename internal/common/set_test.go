package common

import (
	"testing"
)

func TestOrderedSet(t *testing.T) {
	s := NewOrderedSet()

	if s.Len() != 0 {
		t.Fatalf("new set Len() = %d, want 0", s.Len())
	}

	if !s.Add("a.B") {
		t.Error("first Add returned false")
	}

	if s.Add("a.B") {
		t.Error("duplicate Add returned true")
	}

	s.Add("c.D")
	s.Add("a.B")

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}

	if !s.Has("c.D") || s.Has("x.Y") {
		t.Error("Has() gave wrong membership")
	}

	values := s.Values()
	want := []string{"a.B", "c.D"}

	if len(values) != len(want) {
		t.Fatalf("Values() = %v, want %v", values, want)
	}

	for i := range want {
		if values[i] != want[i] {
			t.Errorf("Values()[%d] = %q, want %q", i, values[i], want[i])
		}
	}

	// Mutating the returned slice must not affect the set.
	values[0] = "mutated"
	if s.Values()[0] != "a.B" {
		t.Error("Values() does not return a copy")
	}
}
