package writer

import (
	"strings"

	"viewgen/internal/escape"
)

// requiresKeyword names the dependency list in the generated class body.
// Downstream loaders parse this exact keyword.
const requiresKeyword = "requires"

// AddDependency records a cross-module dependency reference. Insertion is
// idempotent.
func (w *Writer) AddDependency(ref string) {
	w.deps.Add(ref)
}

// AddDependencies records each reference in refs.
func (w *Writer) AddDependencies(refs []string) {
	for _, ref := range refs {
		w.deps.Add(ref)
	}
}

// Dependencies renders the dependency declaration fragment, or the empty
// string when no dependencies were recorded. References appear quoted, in
// first-insertion order:
//
//	requires: ["a.Button","a.Label"],
func (w *Writer) Dependencies() string {
	if w.deps.Len() == 0 {
		return ""
	}

	refs := w.deps.Values()

	quoted := make([]string, 0, len(refs))
	for _, ref := range refs {
		quoted = append(quoted, escape.String(ref))
	}

	return requiresKeyword + ": [" + strings.Join(quoted, ",") + "],"
}
