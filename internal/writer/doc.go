// Package writer implements the stateful code-generation engine that turns
// an ordered statement stream into the text of a compiled view class.
//
// One Writer serves one generation session. It provides:
//   - Named output blocks with a navigation stack and per-block indentation
//   - Deduplicated dependency declarations ("requires" fragment)
//   - Session-unique temporary identifiers
//   - Protected-evaluation scaffolding around dynamic expressions
//   - Error/warning forwarding with a sticky session failure flag
//   - Source-line tracking statements for runtime exception attribution
//
// The writer never interprets statements itself; an externally supplied
// Processor drives all emission.
package writer
