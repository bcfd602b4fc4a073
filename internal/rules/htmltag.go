package rules

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/html"

	"github.com/nitpicklint/nitpick"
)

// htmlTagCase flags uppercase element names in HTML files. The fix
// lowercases the tag name in place.
type htmlTagCase struct {
	severity nitpick.Severity
}

func (*htmlTagCase) Name() string { return "html-tag-case" }

func (r *htmlTagCase) Check(path, src string) []nitpick.Diagnostic {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".html" && ext != ".htm" {
		return nil
	}

	var diags []nitpick.Diagnostic
	lexer := html.NewLexer(parse.NewInputString(src))
	offset := 0

	for {
		tt, data := lexer.Next()
		if tt == html.ErrorToken {
			break
		}

		if tt == html.StartTagToken || tt == html.EndTagToken {
			// The lexer lowercases tag names in its own buffer, so the
			// original casing has to come from the source text. The name
			// starts right after "<" or "</" and its length matches the
			// lexer's (lowercased) text.
			nameOff := 1
			if tt == html.EndTagToken {
				nameOff = 2
			}
			start := offset + nameOff
			end := start + len(lexer.Text())
			if end <= len(src) {
				name := src[start:end]
				lower := strings.ToLower(name)
				if name != lower {
					rng := nitpick.Range{Start: start, End: end}
					diags = append(diags, nitpick.Diagnostic{
						Rule:     r.Name(),
						Severity: r.severity,
						Message:  fmt.Sprintf("tag name <%s> should be lowercase <%s>", name, lower),
						Range:    rng,
						Fix: func(fx *nitpick.Fixer) (nitpick.Fix, error) {
							return fx.ReplaceRange(rng, lower)
						},
					})
				}
			}
		}

		offset += len(data)
	}

	return diags
}
