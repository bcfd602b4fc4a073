package rules

import (
	"strings"

	"github.com/nitpicklint/nitpick"
)

// noCRLF flags Windows line endings. The fix deletes the carriage return,
// leaving the existing '\n' in place.
type noCRLF struct {
	severity nitpick.Severity
}

func (*noCRLF) Name() string { return "no-crlf" }

func (r *noCRLF) Check(path, src string) []nitpick.Diagnostic {
	var diags []nitpick.Diagnostic
	offset := 0
	for {
		i := strings.Index(src[offset:], "\r\n")
		if i < 0 {
			break
		}
		cr := nitpick.Range{Start: offset + i, End: offset + i + 1}
		diags = append(diags, nitpick.Diagnostic{
			Rule:     r.Name(),
			Severity: r.severity,
			Message:  "CRLF line ending",
			Range:    cr,
			Fix: func(fx *nitpick.Fixer) (nitpick.Fix, error) {
				return fx.Remove(cr)
			},
		})
		offset += i + 2
	}
	return diags
}
