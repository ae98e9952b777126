package writer

import "strings"

// block is one named output region: an indent level plus accumulated text
// fragments. Content is the pure concatenation of fragments in insertion
// order.
type block struct {
	level int
	buf   strings.Builder
}

// NewBlock registers a block under name with the given initial indent
// level. Registering an existing name replaces its state, resetting the
// accumulated content.
func (w *Writer) NewBlock(name string, indent int) {
	w.blocks[name] = &block{level: indent}
}

// EnterBlock pushes the currently active block (possibly none) onto the
// navigation stack and makes the named block active. Entering an
// unregistered name silently activates "no block"; callers must register
// names with NewBlock before entering them.
func (w *Writer) EnterBlock(name string) {
	w.stack = append(w.stack, w.active)
	w.active = w.blocks[name]
	w.refreshIndent()
}

// LeaveBlock pops the navigation stack and restores the previous active
// block. Leaving with an empty stack yields "no active block".
func (w *Writer) LeaveBlock() {
	if len(w.stack) == 0 {
		w.active = nil
		w.refreshIndent()

		return
	}

	w.active = w.stack[len(w.stack)-1]
	w.stack = w.stack[:len(w.stack)-1]
	w.refreshIndent()
}

// Write appends the concatenation of parts, verbatim, to the active block.
// Panics if no block is active; that is a contract violation in the
// driving statement processor, not a template error.
func (w *Writer) Write(parts ...string) {
	for _, p := range parts {
		w.active.buf.WriteString(p)
	}
}

// Writeln writes the current indent prefix (when indentation is enabled),
// then the concatenation of parts, then a single newline.
func (w *Writer) Writeln(parts ...string) {
	if w.indent != "" {
		w.active.buf.WriteString(w.indent)
	}

	w.Write(parts...)
	w.active.buf.WriteByte('\n')
}

// IncreaseIndent raises the active block's indent level by one unit.
// No-op entirely when indentation is disabled.
func (w *Writer) IncreaseIndent() {
	if w.cfg.IndentUnit == "" {
		return
	}

	w.active.level++
	w.refreshIndent()
}

// DecreaseIndent lowers the active block's indent level by one unit.
// No-op entirely when indentation is disabled. Dropping below zero is an
// unchecked caller error.
func (w *Writer) DecreaseIndent() {
	if w.cfg.IndentUnit == "" {
		return
	}

	w.active.level--
	w.refreshIndent()
}

// BlockContent returns the full accumulated content of the named block.
// Callable at any point in the session; before processing finishes it
// returns the partial content. Unregistered names yield the empty string.
func (w *Writer) BlockContent(name string) string {
	b, ok := w.blocks[name]
	if !ok {
		return ""
	}

	return b.buf.String()
}

// OutputReady reports whether a block is currently active, i.e. whether
// emission operations are valid right now.
func (w *Writer) OutputReady() bool {
	return w.active != nil
}

// refreshIndent recomputes the cached indent string for the active block.
func (w *Writer) refreshIndent() {
	if w.cfg.IndentUnit == "" || w.active == nil {
		w.indent = ""
		return
	}

	w.indent = strings.Repeat(w.cfg.IndentUnit, w.active.level)
}
