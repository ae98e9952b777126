package writer

import (
	"strconv"

	"viewgen/internal/escape"
	"viewgen/internal/statement"
)

// runtimeErrorHook is the reserved method on the generated object that the
// emitted catch block calls. It receives the same tuple the generation
// sink does: message code, expression text, source line, statement name,
// plus the caught value.
const runtimeErrorHook = "_reportEvalError"

// WrapExpression emits protected-evaluation scaffolding for an expression
// and returns the name of the temporary holding its (possibly null)
// result. The emitted code evaluates the expression inside a try/catch;
// on failure it reports through the runtime error hook with the source
// line and statement name, so expression failures never abort rendering
// and stay attributable to the template construct that produced them.
//
//	var _v1_482 = null;
//	try {
//		_v1_482 = eval("user.name");
//	} catch (e) {
//		this._reportEvalError("EXPR_EVAL_FAILED", "\"user.name\"", 7, "foo", e);
//	}
func (w *Writer) WrapExpression(expr string, stmt *statement.Statement, code string) string {
	name := w.NewVarName()

	w.Writeln("var ", name, " = null;")
	w.Writeln("try {")
	w.IncreaseIndent()
	w.Writeln(name, " = eval(", escape.String(escape.Unquote(expr)), ");")
	w.DecreaseIndent()
	w.Writeln("} catch (e) {")
	w.IncreaseIndent()
	w.Writeln("this.", runtimeErrorHook, "(",
		escape.String(code), ", ",
		escape.String(expr), ", ",
		strconv.Itoa(stmt.Line), ", ",
		escape.String(stmt.Name), ", e);")
	w.DecreaseIndent()
	w.Writeln("}")

	return name
}
