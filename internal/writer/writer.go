package writer

import (
	"strconv"

	"viewgen/internal/common"
	"viewgen/internal/diagnostic"
	"viewgen/internal/statement"
	"viewgen/internal/symbol"
)

// linePropertyName is the reserved property on the generated object that
// carries the most recently executed source line. The runtime exception
// handler reads it to attribute failures to template lines.
const linePropertyName = "_currentLine"

// Processor interprets one statement by calling back into the writer's
// emission operations. The writer never inspects statement semantics
// itself.
type Processor func(w *Writer, stmt *statement.Statement)

// Config holds configuration for a generation session.
type Config struct {
	// IndentUnit is the text repeated once per indent level. An empty
	// unit disables indentation entirely.
	IndentUnit string
	// Processor interprets statements handed to ProcessStatement.
	Processor Processor
	// Sink receives forwarded error and warning events.
	Sink diagnostic.Sink
	// ErrContext is an opaque value passed through to every Sink call.
	ErrContext any
}

// DefaultConfig returns the default session configuration.
func DefaultConfig() Config {
	return Config{IndentUnit: "\t"}
}

// Writer is the stateful code-generation engine for one session. It owns
// the named output blocks, the navigation stack, the dependency and symbol
// registries, the temporary-name counter, and the sticky failure flag.
//
// A Writer serves exactly one generation session on one goroutine and is
// discarded afterwards; none of its state is synchronized.
type Writer struct {
	cfg Config

	blocks map[string]*block
	stack  []*block
	active *block
	indent string

	varCount int

	deps *common.OrderedSet

	macros *symbol.Registry
	views  *symbol.Registry

	failed bool
	errCtx any
}

// New creates a Writer for one generation session.
func New(cfg Config) *Writer {
	return &Writer{
		cfg:    cfg,
		blocks: make(map[string]*block),
		deps:   common.NewOrderedSet(),
		macros: symbol.NewRegistry(),
		views:  symbol.NewRegistry(),
		errCtx: cfg.ErrContext,
	}
}

// ProcessContent runs the configured processor over every statement in
// sequence order.
func (w *Writer) ProcessContent(stmts []statement.Statement) {
	for i := range stmts {
		w.ProcessStatement(&stmts[i])
	}
}

// ProcessStatement delegates one statement to the configured processor.
// A nil processor makes this a no-op.
func (w *Writer) ProcessStatement(stmt *statement.Statement) {
	if w.cfg.Processor == nil {
		return
	}

	w.cfg.Processor(w, stmt)
}

// Macro returns the mutable descriptor slot for a macro name, creating it
// on first access.
func (w *Writer) Macro(name string) *symbol.Descriptor {
	return w.macros.Get(name)
}

// View returns the mutable descriptor slot for a view name, creating it on
// first access.
func (w *Writer) View(name string) *symbol.Descriptor {
	return w.views.Get(name)
}

// Macros exposes the macro registry.
func (w *Writer) Macros() *symbol.Registry {
	return w.macros
}

// Views exposes the view registry.
func (w *Writer) Views() *symbol.Registry {
	return w.views
}

// TrackLine emits the line-tracking assignment for the given source line
// into the active block. No-op when no block is active.
func (w *Writer) TrackLine(line int) {
	if !w.OutputReady() {
		return
	}

	w.Writeln("this.", linePropertyName, " = ", strconv.Itoa(line), ";")
}

// LogError sets the sticky session failure flag and forwards the event to
// the sink.
func (w *Writer) LogError(stmt *statement.Statement, code string, args ...any) {
	w.failed = true
	w.forward(stmt, code, args)
}

// LogWarn forwards the event to the sink without touching the failure
// flag.
func (w *Writer) LogWarn(stmt *statement.Statement, code string, args ...any) {
	w.forward(stmt, code, args)
}

func (w *Writer) forward(stmt *statement.Statement, code string, args []any) {
	if w.cfg.Sink == nil {
		return
	}

	w.cfg.Sink(stmt, code, args, w.errCtx)
}

// Failed reports whether any error-severity event occurred during the
// session. The flag is sticky; generation itself is never aborted.
func (w *Writer) Failed() bool {
	return w.failed
}

// SetErrContext installs the opaque context passed through to every sink
// invocation for the rest of the session.
func (w *Writer) SetErrContext(ctx any) {
	w.errCtx = ctx
}
