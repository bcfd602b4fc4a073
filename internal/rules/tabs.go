package rules

import (
	"strings"

	"github.com/nitpicklint/nitpick"
)

// noTabs flags tab characters in leading indentation. The fix expands each
// tab to the configured number of spaces, keeping any spaces already mixed
// into the indent.
type noTabs struct {
	severity nitpick.Severity
	tabWidth int
}

func (*noTabs) Name() string { return "no-tabs" }

func (r *noTabs) Check(path, src string) []nitpick.Diagnostic {
	var diags []nitpick.Diagnostic
	for _, span := range lineSpans(src) {
		start, end := span[0], span[1]
		p := start
		for p < end && (src[p] == ' ' || src[p] == '\t') {
			p++
		}
		indent := src[start:p]
		if !strings.Contains(indent, "\t") {
			continue
		}
		rng := nitpick.Range{Start: start, End: p}
		expanded := strings.ReplaceAll(indent, "\t", strings.Repeat(" ", r.tabWidth))
		diags = append(diags, nitpick.Diagnostic{
			Rule:     r.Name(),
			Severity: r.severity,
			Message:  "tab used for indentation",
			Range:    rng,
			Fix: func(fx *nitpick.Fixer) (nitpick.Fix, error) {
				return fx.ReplaceRange(rng, expanded)
			},
		})
	}
	return diags
}
