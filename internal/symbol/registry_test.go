package symbol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viewgen/internal/statement"
)

func TestRegistry_GetCreatesOnce(t *testing.T) {
	r := NewRegistry()

	first := r.Get("header")
	require.NotNil(t, first)
	assert.Nil(t, first.Definition)

	// Mutations through the returned slot are visible on later access.
	first.Params = 2
	first.Definition = &statement.Statement{Kind: statement.KindMacro, Name: "header", Line: 4}

	second := r.Get("header")
	assert.Same(t, first, second)
	assert.Equal(t, 2, second.Params)
	assert.Equal(t, 4, second.Definition.Line)

	assert.Equal(t, 1, r.Len())
}

func TestRegistry_Has(t *testing.T) {
	r := NewRegistry()

	assert.False(t, r.Has("footer"))

	r.Get("footer")
	assert.True(t, r.Has("footer"))
}

func TestRegistry_NamesSorted(t *testing.T) {
	r := NewRegistry()
	r.Get("zeta")
	r.Get("alpha")
	r.Get("mid")

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Names())
}
