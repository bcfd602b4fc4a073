package nitpick

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Reporter handles formatting and outputting lint results.
type Reporter struct {
	w             io.Writer
	useColors     bool
	printLines    bool
	printRuleName bool
}

// NewReporter creates a new reporter with the given configuration.
func NewReporter(w io.Writer, config Config) *Reporter {
	return &Reporter{
		w:             w,
		useColors:     shouldUseColors(config),
		printLines:    config.PrintIssuedLines,
		printRuleName: config.PrintRuleName,
	}
}

// shouldUseColors determines if colors should be enabled.
func shouldUseColors(config Config) bool {
	// Explicit flag wins
	if config.UseColors {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); fileInfo != nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintIssues outputs issues in golangci-lint format. Issues are expected to
// be pre-sorted by Lint.
func (r *Reporter) PrintIssues(issues []Issue) {
	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue in golangci-lint style.
func (r *Reporter) printIssue(issue Issue) {
	// Format: file:line:col: message (rule)
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	ruleSuffix := ""
	if r.printRuleName {
		ruleSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		issue.Text,
		RenderStyle(StyleGray, ruleSuffix, r.useColors))

	// Print source lines with caret indicator
	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}

		caret := buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the prefix are preserved so the caret lines up under both tab and
// space indentation.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}
	prefix := sourceLine[:prefixLen]

	var padding strings.Builder
	for _, ch := range prefix {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary and any per-file failures.
func (r *Reporter) PrintSummary(result LintResult) {
	fmt.Fprintln(r.w, "")

	if result.ErrorCount > 0 && result.WarningCount > 0 {
		fmt.Fprintf(r.w, "%s (%s, %s%s)\n",
			pluralizeCount(len(result.Issues), "issue", "issues"),
			pluralizeCount(result.ErrorCount, "error", "errors"),
			pluralizeCount(result.WarningCount, "warning", "warnings"),
			truncatedSuffix(result.TruncatedCount))
	} else {
		fmt.Fprintf(r.w, "%s%s\n",
			pluralizeCount(len(result.Issues), "issue", "issues"),
			truncatedSuffix(result.TruncatedCount))
	}

	for _, failure := range result.Failed {
		fmt.Fprintf(r.w, "%s %s: %s\n",
			RenderStyle(StyleRed, "FAILED", r.useColors), failure.Path, failure.Reason)
	}
}

// PrintFixSummary reports the files rewritten by a fix run.
func (r *Reporter) PrintFixSummary(result LintResult) {
	if len(result.FilesFixed) == 0 {
		return
	}
	fmt.Fprintf(r.w, "%s %s in %s\n",
		RenderStyle(StyleGreen, "Fixed", r.useColors),
		pluralizeCount(result.FixedCount, "problem", "problems"),
		pluralizeCount(len(result.FilesFixed), "file", "files"))
	for _, path := range result.FilesFixed {
		fmt.Fprintf(r.w, "  %s\n", path)
	}
}

func truncatedSuffix(truncated int) string {
	if truncated == 0 {
		return ""
	}
	return fmt.Sprintf("; %s truncated", pluralizeCount(truncated, "issue", "issues"))
}

// pluralizeCount returns a formatted string with count and singular/plural form.
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled.
func (r *Reporter) UseColors() bool {
	return r.useColors
}
