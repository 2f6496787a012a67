package chart

// Severity classifies a Diagnostic for presentation.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns the display name of the severity.
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "info"
}

// DiagnosticKind identifies the class of input problem (or notice) a
// Diagnostic reports.
type DiagnosticKind int

const (
	// DiagFormat reports a segment that does not parse as an integer.
	// Fatal to the field: the whole field yields no output.
	DiagFormat DiagnosticKind = iota
	// DiagRange reports a tooth or bridge endpoint outside 1-32.
	// The offending item is dropped, the rest of the field survives.
	DiagRange
	// DiagJawMismatch reports a tooth outside the asserted arch, or a
	// bridge spanning both arches. Same recovery as DiagRange.
	DiagJawMismatch
	// DiagRecovered notes that a digit run without commas was
	// reinterpreted as a comma-separated tooth list.
	DiagRecovered
	// DiagBridgeSummary lists the accepted bridge spans of a field.
	DiagBridgeSummary
)

// Diagnostic is a structured parser message tied to the field being
// parsed. The core only produces diagnostics; callers decide how to
// surface them.
type Diagnostic struct {
	Kind     DiagnosticKind
	Severity Severity
	Message  string
	Input    string // the offending (or reinterpreted) text
}

func infoDiag(kind DiagnosticKind, msg, input string) Diagnostic {
	return Diagnostic{Kind: kind, Severity: SeverityInfo, Message: msg, Input: input}
}

func warnDiag(kind DiagnosticKind, msg, input string) Diagnostic {
	return Diagnostic{Kind: kind, Severity: SeverityWarning, Message: msg, Input: input}
}
