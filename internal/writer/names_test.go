package writer

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewVarName_UniqueAndIndexed(t *testing.T) {
	w := New(DefaultConfig())

	const n = 100

	seen := make(map[string]bool, n)

	for i := 1; i <= n; i++ {
		name := w.NewVarName()

		if seen[name] {
			t.Fatalf("NewVarName() produced duplicate %q on call %d", name, i)
		}

		seen[name] = true

		if !strings.HasPrefix(name, fmt.Sprintf("%s%d_", tempVarPrefix, i)) {
			t.Errorf("call %d produced %q, want prefix %q", i, name, fmt.Sprintf("%s%d_", tempVarPrefix, i))
		}
	}
}

func TestNewVarName_CountersIndependentPerSession(t *testing.T) {
	a := New(DefaultConfig())
	b := New(DefaultConfig())

	a.NewVarName()
	a.NewVarName()

	name := b.NewVarName()
	if !strings.HasPrefix(name, tempVarPrefix+"1_") {
		t.Errorf("fresh session first name = %q, want prefix %q", name, tempVarPrefix+"1_")
	}
}
