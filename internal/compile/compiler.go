package compile

import (
	"strings"

	"viewgen/internal/diagnostic"
	"viewgen/internal/escape"
	"viewgen/internal/statement"
	"viewgen/internal/writer"
)

// Output block names. The statement processor may enter and leave these in
// any order; assembly concatenates them in the fixed order below.
const (
	prologueBlock = "prologue"
	macrosBlock   = "macros"
	renderBlock   = "render"
	epilogueBlock = "epilogue"
)

// Config holds configuration for compiling one statement stream.
type Config struct {
	// ClassName is the generated view class name. Empty falls back to
	// the statement document's view name.
	ClassName string
	// IndentUnit is the per-level indent text; empty disables
	// indentation.
	IndentUnit string
}

// DefaultConfig returns the default compiler configuration.
func DefaultConfig() Config {
	return Config{
		ClassName:  "app.View",
		IndentUnit: "\t",
	}
}

// Compiler drives one writer session per statement stream and assembles
// the block contents into the final class text.
type Compiler struct {
	cfg   Config
	diags diagnostic.Diagnostics
}

// New creates a Compiler with the given configuration.
func New(cfg Config) *Compiler {
	return &Compiler{cfg: cfg}
}

// Diagnostics returns the reports collected across Compile calls.
func (c *Compiler) Diagnostics() *diagnostic.Diagnostics {
	return &c.diags
}

// CompileDocument compiles a loaded statement document, using the
// document's view name unless the configuration overrides it.
func (c *Compiler) CompileDocument(doc *statement.Document) (string, error) {
	name := c.cfg.ClassName
	if name == "" {
		name = doc.View
	}

	return c.compile(name, doc.Statements)
}

// Compile compiles a raw statement sequence into the class text. The text
// is returned even when the session failed; the error tells the caller the
// output should be discarded.
func (c *Compiler) Compile(stmts []statement.Statement) (string, error) {
	return c.compile(c.cfg.ClassName, stmts)
}

func (c *Compiler) compile(className string, stmts []statement.Statement) (string, error) {
	w := writer.New(writer.Config{
		IndentUnit: c.cfg.IndentUnit,
		Processor:  Process,
		Sink:       diagnostic.Collect(&c.diags),
		ErrContext: className,
	})

	w.NewBlock(prologueBlock, 0)
	w.NewBlock(macrosBlock, 1)
	w.NewBlock(renderBlock, 1)
	w.NewBlock(epilogueBlock, 0)

	w.EnterBlock(prologueBlock)
	w.Writeln("defineView(", escape.String(className), ", {")
	w.LeaveBlock()

	w.EnterBlock(renderBlock)
	w.Writeln("render: function (data) {")
	w.IncreaseIndent()
	w.ProcessContent(stmts)
	w.DecreaseIndent()
	w.Writeln("}")
	w.LeaveBlock()

	w.EnterBlock(epilogueBlock)
	w.Writeln("});")
	w.LeaveBlock()

	text := c.assemble(w)

	if w.Failed() {
		return text, c.diags.Error()
	}

	return text, nil
}

// assemble concatenates the block contents in their fixed order, placing
// the dependency fragment at the top of the class body.
func (c *Compiler) assemble(w *writer.Writer) string {
	var sb strings.Builder

	sb.WriteString(w.BlockContent(prologueBlock))

	if deps := w.Dependencies(); deps != "" {
		sb.WriteString(c.cfg.IndentUnit)
		sb.WriteString(deps)
		sb.WriteByte('\n')
	}

	sb.WriteString(w.BlockContent(macrosBlock))
	sb.WriteString(w.BlockContent(renderBlock))
	sb.WriteString(w.BlockContent(epilogueBlock))

	return sb.String()
}
