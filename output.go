package nitpick

import (
	"io"
	"os"
)

// OutputFormat represents the linter output format.
type OutputFormat string

const (
	// OutputIssues shows errors/warnings in golangci-lint format (default).
	OutputIssues OutputFormat = "issues"
	// OutputJSON exports structured data in JSON format (tooling integration).
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the output format based on flags.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	if quiet {
		return OutputIssues // suppressed by the caller, exit code only
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "json":
		return OutputJSON
	}

	// Following golangci-lint's UX: issues only by default.
	return OutputIssues
}

// WriteOutput writes the lint result in the specified format.
func WriteOutput(w io.Writer, result *LintResult, format OutputFormat, config Config) {
	switch format {
	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}

	default:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintFixSummary(*result)
		reporter.PrintSummary(*result)
	}
}
