// Package nitpick provides source-hygiene linting with automatic fixing.
//
// nitpick checks source trees for textual problems such as trailing
// whitespace, CRLF line endings, missing final newlines, runs of blank
// lines, tab indentation, and uppercase HTML tag names. Each finding is a
// Diagnostic that may carry a fix producer; the fix pipeline composes the
// produced edits into a single conflict-free rewrite of the file.
//
// # Linting
//
//	config := nitpick.Config{
//		Paths: []string{"internal/**/*.go", "web/**/*.html"},
//		Rules: rules.Default(rules.Options{}),
//	}
//	result, err := nitpick.Lint(config)
//
// # Fixing
//
// With Config.Fix set, every file is run through the fix pipeline: fixes are
// collected from diagnostics, overlapping fixes are resolved in favor of the
// earliest-reported one, and the file is rewritten in a single pass. A file
// is either left byte-identical or fully rewritten, never partially patched.
//
// # CLI Tool
//
// nitpick also provides a CLI tool. Install with:
//
//	go install github.com/nitpicklint/nitpick/cmd/nitpick@latest
package nitpick
