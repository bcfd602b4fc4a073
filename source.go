package nitpick

import "strings"

// lineIndex maps byte offsets in a source text to 1-based line and column
// positions, and extracts individual lines for display. Built once per file
// when diagnostics are turned into issues.
type lineIndex struct {
	src    string
	starts []int // byte offset of the first character of each line
}

func newLineIndex(src string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{src: src, starts: starts}
}

// position returns the 1-based line and byte column for a byte offset.
// Offsets past the end of the source map to the position just past the last
// character, so zero-width EOF diagnostics still render a location.
func (ix *lineIndex) position(offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	if offset > len(ix.src) {
		offset = len(ix.src)
	}
	// Last line whose start is <= offset.
	lo, hi := 0, len(ix.starts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if ix.starts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1, offset - ix.starts[lo] + 1
}

// lineText returns the 1-based line without its trailing newline or carriage
// return. Out-of-range lines yield an empty string.
func (ix *lineIndex) lineText(line int) string {
	if line < 1 || line > len(ix.starts) {
		return ""
	}
	start := ix.starts[line-1]
	end := len(ix.src)
	if line < len(ix.starts) {
		end = ix.starts[line] - 1 // drop the '\n'
	}
	return strings.TrimSuffix(ix.src[start:end], "\r")
}
