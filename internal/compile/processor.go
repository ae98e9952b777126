package compile

import (
	"strings"

	"viewgen/internal/diagnostic"
	"viewgen/internal/escape"
	"viewgen/internal/statement"
	"viewgen/internal/writer"
)

// Process is the default statement processor. It interprets the stock
// statement kinds by calling the writer's emission operations; anything it
// does not recognize is reported as a warning and skipped.
func Process(w *writer.Writer, stmt *statement.Statement) {
	switch stmt.Kind {
	case statement.KindText:
		w.TrackLine(stmt.Line)
		w.Writeln("this.write(", escape.String(stmt.Text), ");")

	case statement.KindExpr:
		w.TrackLine(stmt.Line)
		tmp := w.WrapExpression(stmt.Text, stmt, diagnostic.CodeExprEvalFailed)
		w.Writeln("this.write(", tmp, ");")

	case statement.KindRequire:
		if stmt.Name == "" {
			w.LogError(stmt, diagnostic.CodeMissingName, statement.KindRequire)
			return
		}

		w.AddDependency(stmt.Name)

	case statement.KindMacro:
		processMacro(w, stmt)

	case statement.KindView:
		processView(w, stmt)

	default:
		w.LogWarn(stmt, diagnostic.CodeUnknownStatement, stmt.Kind)
	}
}

// processMacro records the macro definition and emits its body as a member
// function into the macros block, wherever the writer currently is.
func processMacro(w *writer.Writer, stmt *statement.Statement) {
	if stmt.Name == "" {
		w.LogError(stmt, diagnostic.CodeMissingName, statement.KindMacro)
		return
	}

	d := w.Macro(stmt.Name)
	if d.Definition != nil {
		w.LogError(stmt, diagnostic.CodeDuplicateMacro, stmt.Name, d.Definition.Line)
		return
	}

	d.Definition = stmt
	d.Params = len(stmt.Params)

	w.EnterBlock(macrosBlock)
	w.Writeln(stmt.Name, ": function (", strings.Join(stmt.Params, ", "), ") {")
	w.IncreaseIndent()
	w.ProcessContent(stmt.Children)
	w.DecreaseIndent()
	w.Writeln("},")
	w.LeaveBlock()
}

// processView records the subview reference, implies a dependency on its
// class, and emits the render call.
func processView(w *writer.Writer, stmt *statement.Statement) {
	if stmt.Name == "" {
		w.LogError(stmt, diagnostic.CodeMissingName, statement.KindView)
		return
	}

	d := w.View(stmt.Name)
	if d.Definition == nil {
		d.Definition = stmt
	}

	d.Uses++

	w.AddDependency(stmt.Name)

	w.TrackLine(stmt.Line)
	w.Writeln("this.renderView(", escape.String(stmt.Name), ", data);")
}
