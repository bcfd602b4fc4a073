package nitpick

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema.
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Issues    []JSONIssue `json:"issues"`
	Fixed     []string    `json:"fixed,omitempty"`
	Failed    []JSONFail  `json:"failed,omitempty"`
}

// JSONSummary contains high-level counts.
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	FilesScanned int `json:"files_scanned"`
	FilesFixed   int `json:"files_fixed"`
	FixedIssues  int `json:"fixed_issues"`
}

// JSONIssue represents a single linting issue.
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Rule     string `json:"rule"`
	Source   string `json:"source,omitempty"` // Optional source line
}

// JSONFail records a file whose fix pipeline aborted.
type JSONFail struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

// WriteJSON writes the lint result as JSON.
func WriteJSON(w io.Writer, result *LintResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts LintResult to JSONOutput.
func buildJSONOutput(result *LintResult) JSONOutput {
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Rule:     issue.FromLinter,
			Source:   source,
		}
	}

	failed := make([]JSONFail, len(result.Failed))
	for i, f := range result.Failed {
		failed[i] = JSONFail{File: f.Path, Reason: f.Reason}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       result.ErrorCount,
			Warnings:     result.WarningCount,
			FilesScanned: result.FilesScanned,
			FilesFixed:   len(result.FilesFixed),
			FixedIssues:  result.FixedCount,
		},
		Issues: jsonIssues,
		Fixed:  result.FilesFixed,
		Failed: failed,
	}
}
