package writer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDependencies_Empty(t *testing.T) {
	w := New(DefaultConfig())

	assert.Equal(t, "", w.Dependencies())
}

func TestDependencies_Idempotent(t *testing.T) {
	w := New(DefaultConfig())

	w.AddDependency("a.B")
	once := w.Dependencies()

	w.AddDependency("a.B")
	w.AddDependency("a.B")

	assert.Equal(t, once, w.Dependencies())
}

func TestDependencies_Rendering(t *testing.T) {
	w := New(DefaultConfig())

	w.AddDependency("a.B")
	w.AddDependency("a.B")
	w.AddDependency("c.D")

	assert.Equal(t, `requires: ["a.B","c.D"],`, w.Dependencies())
}

func TestDependencies_AddMany(t *testing.T) {
	w := New(DefaultConfig())

	w.AddDependencies([]string{"ui.Button", "ui.Label", "ui.Button"})
	w.AddDependency("ui.Label")

	assert.Equal(t, `requires: ["ui.Button","ui.Label"],`, w.Dependencies())
}

func TestDependencies_QuotingUsesEscaper(t *testing.T) {
	w := New(DefaultConfig())

	w.AddDependency(`odd"ref`)

	assert.Equal(t, `requires: ["odd\"ref"],`, w.Dependencies())
}
