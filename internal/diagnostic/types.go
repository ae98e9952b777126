package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"viewgen/internal/statement"
)

// Sink receives one structured event from the writer. The stmt identifies
// the template construct being processed, code selects the message, args
// carry the message parameters, and ctx is the opaque session context the
// caller installed on the writer.
type Sink func(stmt *statement.Statement, code string, args []any, ctx any)

// Diagnostics holds all reports collected during a generation session.
type Diagnostics struct {
	Errors   []Report
	Warnings []Report
}

// Report represents a single diagnostic message.
type Report struct {
	// Severity of the report.
	Severity Severity
	// Code is a unique identifier for this type of report.
	Code string
	// Message is the human-readable description.
	Message string
	// View identifies which view class this relates to (if any).
	View string
	// Statement is the construct name this relates to (if any).
	Statement string
	// Line is the 1-based source line (0 if unknown).
	Line int
}

// AddError adds an error report.
func (d *Diagnostics) AddError(code, message, view, stmtName string, line int) {
	d.Errors = append(d.Errors, Report{
		Severity:  SeverityError,
		Code:      code,
		Message:   message,
		View:      view,
		Statement: stmtName,
		Line:      line,
	})
}

// AddWarning adds a warning report.
func (d *Diagnostics) AddWarning(code, message, view, stmtName string, line int) {
	d.Warnings = append(d.Warnings, Report{
		Severity:  SeverityWarning,
		Code:      code,
		Message:   message,
		View:      view,
		Statement: stmtName,
		Line:      line,
	})
}

// HasErrors returns true if there are any error reports.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
}

// Error returns a combined error from all error reports, or nil if valid.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted report string.
func (r Report) String() string {
	var prefix []string
	if r.View != "" {
		prefix = append(prefix, "["+r.View+"]")
	}

	if r.Line > 0 {
		prefix = append(prefix, fmt.Sprintf("line %d", r.Line))
	}

	if r.Statement != "" {
		prefix = append(prefix, r.Statement)
	}

	msg := r.Message
	if r.Code != "" {
		msg = fmt.Sprintf("[%s] %s", r.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

// Collect returns a Sink that records every event into d, classified by the
// default severity of its code. The ctx value is rendered as the view name
// when it is a string.
func Collect(d *Diagnostics) Sink {
	return func(stmt *statement.Statement, code string, args []any, ctx any) {
		view, _ := ctx.(string)

		var stmtName string

		line := 0
		if stmt != nil {
			stmtName = stmt.Name
			line = stmt.Line
		}

		msg := Message(code, args)

		if SeverityOf(code) == SeverityError {
			d.AddError(code, msg, view, stmtName, line)
			return
		}

		d.AddWarning(code, msg, view, stmtName, line)
	}
}
