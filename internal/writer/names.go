package writer

import (
	"fmt"
	"math/rand"
)

// tempVarPrefix starts every generated temporary identifier. The
// underscore keeps generated names out of the template author's
// namespace.
const tempVarPrefix = "_v"

// NewVarName returns a fresh temporary identifier for generated code.
// Uniqueness within the session is guaranteed by the counter alone; the
// random suffix only makes collisions with hand-written code unlikely.
// Names are never recycled.
func (w *Writer) NewVarName() string {
	w.varCount++

	return fmt.Sprintf("%s%d_%d", tempVarPrefix, w.varCount, rand.Intn(10000))
}
