package nitpick

import "fmt"

// Severity ranks how serious a diagnostic is.
type Severity uint8

// Diagnostic severities. Warnings surface in the report; errors additionally
// fail the run.
const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return "unknown"
}

// ParseSeverity converts a configuration string to a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "warning", "warn":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	}
	return SeverityWarning, fmt.Errorf("unknown severity %q (want warning or error)", s)
}

// Range is a half-open byte interval [Start, End) into the original source
// text of one file.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int { return r.End - r.Start }

// FixFn produces the concrete text edit for a diagnostic. It receives the
// Fixer bound to the diagnostic's source file and returns exactly one Fix,
// or an error (typically wrapping ErrInvalidRange) when no fix can be built.
type FixFn func(fx *Fixer) (Fix, error)

// Diagnostic is a single rule violation in one source file.
type Diagnostic struct {
	Rule     string
	Severity Severity
	Message  string
	Range    Range

	// Fix builds the automatic fix for this violation. Nil when the rule
	// offers no fix.
	Fix FixFn
}

// Report holds the diagnostics found in one source file. Diagnostics keep
// their reporting order; the fix pipeline removes the ones it resolves.
type Report struct {
	Path        string
	Source      string
	Diagnostics []Diagnostic
}

// Rule checks one source file and reports violations. Implementations must
// be safe for concurrent use: Lint runs files in parallel against the same
// rule values.
type Rule interface {
	Name() string
	Check(path, source string) []Diagnostic
}
