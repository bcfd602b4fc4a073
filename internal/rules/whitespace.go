package rules

import (
	"fmt"
	"strings"

	"github.com/nitpicklint/nitpick"
)

// trailingWhitespace flags spaces and tabs before the end of a line.
type trailingWhitespace struct {
	severity nitpick.Severity
}

func (*trailingWhitespace) Name() string { return "trailing-whitespace" }

func (r *trailingWhitespace) Check(path, src string) []nitpick.Diagnostic {
	var diags []nitpick.Diagnostic
	for _, span := range lineSpans(src) {
		start, end := span[0], span[1]
		// A CRLF terminator is no-crlf's business, not trailing whitespace.
		if end > start && src[end-1] == '\r' {
			end--
		}
		w := end
		for w > start && (src[w-1] == ' ' || src[w-1] == '\t') {
			w--
		}
		if w == end {
			continue
		}
		rng := nitpick.Range{Start: w, End: end}
		diags = append(diags, nitpick.Diagnostic{
			Rule:     r.Name(),
			Severity: r.severity,
			Message:  "trailing whitespace",
			Range:    rng,
			Fix: func(fx *nitpick.Fixer) (nitpick.Fix, error) {
				return fx.Remove(rng)
			},
		})
	}
	return diags
}

// finalNewline flags files that do not end with a newline.
type finalNewline struct {
	severity nitpick.Severity
}

func (*finalNewline) Name() string { return "final-newline" }

func (r *finalNewline) Check(path, src string) []nitpick.Diagnostic {
	if src == "" || strings.HasSuffix(src, "\n") {
		return nil
	}
	eof := nitpick.Range{Start: len(src), End: len(src)}
	return []nitpick.Diagnostic{{
		Rule:     r.Name(),
		Severity: r.severity,
		Message:  "no newline at end of file",
		Range:    eof,
		Fix: func(fx *nitpick.Fixer) (nitpick.Fix, error) {
			return fx.InsertAfter(eof, "\n")
		},
	}}
}

// maxBlankLines flags runs of blank lines longer than the configured
// maximum. The fix removes the extra lines and keeps the allowed ones.
type maxBlankLines struct {
	severity nitpick.Severity
	max      int
}

func (*maxBlankLines) Name() string { return "no-multiple-blank-lines" }

func (r *maxBlankLines) Check(path, src string) []nitpick.Diagnostic {
	var diags []nitpick.Diagnostic

	spans := lineSpans(src)
	runStart := -1 // index into spans of the first blank line in the run
	flush := func(runEnd int) {
		if runStart < 0 {
			return
		}
		count := runEnd - runStart
		if count > r.max {
			// Byte range of the lines beyond the allowed run, newlines
			// included.
			firstExtra := spans[runStart+r.max]
			lastExtra := spans[runEnd-1]
			end := lastExtra[1]
			if end < len(src) {
				end++ // include the terminating '\n'
			}
			rng := nitpick.Range{Start: firstExtra[0], End: end}
			diags = append(diags, nitpick.Diagnostic{
				Rule:     r.Name(),
				Severity: r.severity,
				Message:  fmt.Sprintf("more than %d consecutive blank lines", r.max),
				Range:    rng,
				Fix: func(fx *nitpick.Fixer) (nitpick.Fix, error) {
					return fx.Remove(rng)
				},
			})
		}
		runStart = -1
	}

	for i, span := range spans {
		if isBlankLine(src[span[0]:span[1]]) {
			if runStart < 0 {
				runStart = i
			}
			continue
		}
		flush(i)
	}
	flush(len(spans))

	return diags
}

func isBlankLine(line string) bool {
	return strings.TrimRight(line, " \t\r") == ""
}
