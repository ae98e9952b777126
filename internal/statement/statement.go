package statement

// Statement kinds produced by the template parser.
const (
	KindText    = "text"
	KindExpr    = "expr"
	KindRequire = "require"
	KindMacro   = "macro"
	KindView    = "view"
)

// Statement is one abstract template statement. The parser that produces
// statements and the processor that interprets them live outside the
// writer; the writer only carries statements through for attribution.
type Statement struct {
	// Kind selects how the statement processor interprets this entry.
	Kind string `yaml:"kind"`
	// Name is the construct name (macro name, view name, dependency ref).
	Name string `yaml:"name,omitempty"`
	// Line is the 1-based source line in the template markup.
	Line int `yaml:"line"`
	// Text is the payload: literal text or an expression string.
	Text string `yaml:"text,omitempty"`
	// Params are declared parameter names for macro definitions.
	Params []string `yaml:"params,omitempty"`
	// Children are nested statements (macro bodies).
	Children []Statement `yaml:"children,omitempty"`
}

// Document is one parsed statement stream with its target view class.
type Document struct {
	View       string      `yaml:"view"`
	Statements []Statement `yaml:"statements"`
}
