package nitpick

import (
	"errors"
	"fmt"
)

// ErrInvalidRange reports a fix range that falls outside the source text.
// A producer failing with it simply loses its fix; the diagnostic stays
// reported unfixed.
var ErrInvalidRange = errors.New("fix range out of bounds")

// Fix is a concrete text edit: the bytes covered by Range are replaced with
// Text. Text may be empty (deletion) and Range may be zero-width
// (insertion).
type Fix struct {
	Range Range
	Text  string
}

// Fixer builds validated fixes against a single source text. It is stateless
// beyond the source length and safe to call repeatedly; every operation
// checks the range before producing a Fix.
type Fixer struct {
	srcLen int
}

// NewFixer returns a Fixer bound to the given source text.
func NewFixer(source string) *Fixer {
	return &Fixer{srcLen: len(source)}
}

func (f *Fixer) validate(r Range) error {
	if r.Start < 0 || r.Start > r.End || r.End > f.srcLen {
		return fmt.Errorf("range [%d,%d) in %d-byte source: %w", r.Start, r.End, f.srcLen, ErrInvalidRange)
	}
	return nil
}

// ReplaceRange builds a fix that replaces the bytes covered by r with text.
func (f *Fixer) ReplaceRange(r Range, text string) (Fix, error) {
	if err := f.validate(r); err != nil {
		return Fix{}, err
	}
	return Fix{Range: r, Text: text}, nil
}

// InsertBefore builds a zero-width fix that inserts text at r.Start.
func (f *Fixer) InsertBefore(r Range, text string) (Fix, error) {
	return f.ReplaceRange(Range{Start: r.Start, End: r.Start}, text)
}

// InsertAfter builds a zero-width fix that inserts text at r.End.
func (f *Fixer) InsertAfter(r Range, text string) (Fix, error) {
	return f.ReplaceRange(Range{Start: r.End, End: r.End}, text)
}

// Remove builds a fix that deletes the bytes covered by r.
func (f *Fixer) Remove(r Range) (Fix, error) {
	return f.ReplaceRange(r, "")
}
