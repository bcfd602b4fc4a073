// Package rules implements nitpick's built-in source-hygiene rules.
//
// Every rule works on raw source text with byte offsets. Rules that can
// repair their findings attach a fix producer to each diagnostic; the fix
// pipeline in the root package takes it from there.
package rules

import "github.com/nitpicklint/nitpick"

// Options configures the built-in rule set.
type Options struct {
	MaxBlankLines int // threshold for no-multiple-blank-lines (default 1)
	TabWidth      int // spaces per tab for no-tabs fixes (default 4)

	// Severity overrides by rule name.
	Severity map[string]nitpick.Severity

	// Disabled lists rule names to leave out of the set.
	Disabled []string
}

// Default rule severities.
var defaultSeverity = map[string]nitpick.Severity{
	"trailing-whitespace":     nitpick.SeverityWarning,
	"final-newline":           nitpick.SeverityWarning,
	"no-crlf":                 nitpick.SeverityWarning,
	"no-multiple-blank-lines": nitpick.SeverityWarning,
	"no-tabs":                 nitpick.SeverityWarning,
	"html-tag-case":           nitpick.SeverityError,
}

// Default builds the built-in rule set with the given options applied.
func Default(opts Options) []nitpick.Rule {
	if opts.MaxBlankLines <= 0 {
		opts.MaxBlankLines = 1
	}
	if opts.TabWidth <= 0 {
		opts.TabWidth = 4
	}

	all := []nitpick.Rule{
		&trailingWhitespace{severity: severityFor("trailing-whitespace", opts)},
		&finalNewline{severity: severityFor("final-newline", opts)},
		&noCRLF{severity: severityFor("no-crlf", opts)},
		&maxBlankLines{severity: severityFor("no-multiple-blank-lines", opts), max: opts.MaxBlankLines},
		&noTabs{severity: severityFor("no-tabs", opts), tabWidth: opts.TabWidth},
		&htmlTagCase{severity: severityFor("html-tag-case", opts)},
	}

	disabled := make(map[string]bool, len(opts.Disabled))
	for _, name := range opts.Disabled {
		disabled[name] = true
	}

	enabled := make([]nitpick.Rule, 0, len(all))
	for _, rule := range all {
		if !disabled[rule.Name()] {
			enabled = append(enabled, rule)
		}
	}
	return enabled
}

func severityFor(name string, opts Options) nitpick.Severity {
	if sev, ok := opts.Severity[name]; ok {
		return sev
	}
	return defaultSeverity[name]
}

// lineSpan yields [start, end) offsets of each line's content, where end
// points at the terminating '\n' (or EOF for the last line).
func lineSpans(src string) [][2]int {
	var spans [][2]int
	start := 0
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			spans = append(spans, [2]int{start, i})
			start = i + 1
		}
	}
	if start < len(src) {
		spans = append(spans, [2]int{start, len(src)})
	}
	return spans
}
