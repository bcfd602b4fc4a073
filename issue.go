package nitpick

// Issue represents a single linting violation in golangci-lint format.
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // rule name, e.g. "trailing-whitespace"
	Text        string   `json:"Text"`        // "trailing whitespace"
	Severity    string   `json:"Severity"`    // "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue.
type IssuePos struct {
	Filename string `json:"Filename"`
	Line     int    `json:"Line"`   // 1-based
	Column   int    `json:"Column"` // 1-based byte column
}

// issuesFromReport converts the report's remaining diagnostics into issues,
// resolving byte offsets to line/column positions against the original
// source text.
func issuesFromReport(rep *Report, ix *lineIndex) []Issue {
	if len(rep.Diagnostics) == 0 {
		return nil
	}
	issues := make([]Issue, 0, len(rep.Diagnostics))
	for _, d := range rep.Diagnostics {
		line, col := ix.position(d.Range.Start)
		issues = append(issues, Issue{
			FromLinter:  d.Rule,
			Text:        d.Message,
			Severity:    d.Severity.String(),
			SourceLines: []string{ix.lineText(line)},
			Pos: IssuePos{
				Filename: rep.Path,
				Line:     line,
				Column:   col,
			},
		})
	}
	return issues
}
