// Package diagnostic provides structured warnings and errors for the
// view-class writer, plus the sink contract events are forwarded through.
//
// Key capabilities:
//   - Message codes with default severities and format strings
//   - Report collection keyed by view, statement, and source line
//   - A Sink adapter that records forwarded writer events
package diagnostic
