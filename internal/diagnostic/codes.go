package diagnostic

import (
	"fmt"
	"strings"
)

// Message codes emitted during a generation session. The code also appears
// verbatim in generated error-reporting scaffolds, so downstream runtime
// tooling keys on the same identifiers.
const (
	CodeExprEvalFailed   = "EXPR_EVAL_FAILED"
	CodeDuplicateMacro   = "DUPLICATE_MACRO"
	CodeMissingName      = "MISSING_NAME"
	CodeUnknownStatement = "UNKNOWN_STATEMENT"
)

// messageSpec pairs the default severity of a code with its format string.
type messageSpec struct {
	severity Severity
	format   string
}

var messages = map[string]messageSpec{
	CodeExprEvalFailed:   {SeverityError, "expression %q cannot be evaluated"},
	CodeDuplicateMacro:   {SeverityError, "macro %q is already defined at line %d"},
	CodeMissingName:      {SeverityError, "%s statement has no name"},
	CodeUnknownStatement: {SeverityWarning, "unknown statement kind %q ignored"},
}

// SeverityOf returns the default severity for a message code.
// Unknown codes classify as errors.
func SeverityOf(code string) Severity {
	if spec, ok := messages[code]; ok {
		return spec.severity
	}

	return SeverityError
}

// Message renders the human-readable text for a code and its arguments.
func Message(code string, args []any) string {
	spec, ok := messages[code]
	if !ok {
		if len(args) == 0 {
			return code
		}

		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, fmt.Sprint(a))
		}

		return code + ": " + strings.Join(parts, ", ")
	}

	return fmt.Sprintf(spec.format, args...)
}
