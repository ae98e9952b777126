package diagnostic

//go:generate go tool stringer -type=Severity -output=severity_string.go

// Severity represents the severity level of a report.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)
