package nitpick

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrOverlap reports that overlapping edits reached the patch applier. The
// resolver guarantees this never happens; seeing it means a defect upstream.
// Processing of the affected file is aborted, the file is left untouched.
var ErrOverlap = errors.New("overlapping edits reached the patch applier")

// PatchResult is the outcome of applying fixes to one file's source text.
// Output equals the input source byte for byte when Changed is false.
type PatchResult struct {
	Changed bool
	Output  string
}

// candidate pairs a produced fix with the index of its diagnostic in the
// report, which doubles as the tie-breaking order during resolution.
type candidate struct {
	index int
	fix   Fix
}

// collect invokes each diagnostic's fix producer once, gathering the fixes
// that were built successfully. Diagnostics without a producer, or whose
// producer fails, contribute nothing and stay reported as unfixed.
func collect(rep *Report) []candidate {
	fx := NewFixer(rep.Source)
	cands := make([]candidate, 0, len(rep.Diagnostics))
	for i, d := range rep.Diagnostics {
		if d.Fix == nil {
			continue
		}
		fix, err := d.Fix(fx)
		if err != nil {
			continue
		}
		cands = append(cands, candidate{index: i, fix: fix})
	}
	return cands
}

// resolve orders candidates by range start (stable, so the earlier-reported
// diagnostic wins a tie) and greedily accepts the earliest-starting
// non-overlapping subset in one left-to-right scan. Adjacent fixes
// (a.End == b.Start) do not conflict.
func resolve(cands []candidate) (accepted, rejected []candidate) {
	sorted := make([]candidate, len(cands))
	copy(sorted, cands)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].fix.Range.Start < sorted[j].fix.Range.Start
	})

	cursor := 0
	for _, c := range sorted {
		if c.fix.Range.Start >= cursor {
			accepted = append(accepted, c)
			cursor = c.fix.Range.End
		} else {
			rejected = append(rejected, c)
		}
	}
	return accepted, rejected
}

// Patch rewrites source by splicing in the given fixes, which must be sorted
// by start and pairwise non-overlapping. Every byte not covered by a fix is
// preserved in original order. The full output is materialized in memory; a
// cursor regression aborts with ErrOverlap before anything is produced for
// the caller to write.
func Patch(source string, fixes []Fix) (PatchResult, error) {
	if len(fixes) == 0 {
		return PatchResult{Changed: false, Output: source}, nil
	}

	size := len(source)
	for _, f := range fixes {
		size += len(f.Text) - f.Range.Len()
	}

	var b strings.Builder
	b.Grow(size)

	cursor := 0
	for _, f := range fixes {
		if f.Range.Start < cursor || f.Range.End > len(source) {
			return PatchResult{}, fmt.Errorf("edit [%d,%d) at cursor %d: %w",
				f.Range.Start, f.Range.End, cursor, ErrOverlap)
		}
		b.WriteString(source[cursor:f.Range.Start])
		b.WriteString(f.Text)
		cursor = f.Range.End
	}
	b.WriteString(source[cursor:])

	return PatchResult{Changed: true, Output: b.String()}, nil
}

// FixReport runs the per-file fix pipeline: collect candidate fixes from the
// report's diagnostics, resolve conflicts, apply the accepted subset, and
// prune the resolved diagnostics from the report. Rejected fixes are an
// expected outcome, not an error; their diagnostics stay in the report with
// no retry within this invocation. On error the report is left unmodified.
func FixReport(rep *Report) (PatchResult, error) {
	accepted, _ := resolve(collect(rep))

	fixes := make([]Fix, len(accepted))
	for i, c := range accepted {
		fixes[i] = c.fix
	}

	res, err := Patch(rep.Source, fixes)
	if err != nil {
		return PatchResult{}, err
	}

	if len(accepted) > 0 {
		resolved := make(map[int]bool, len(accepted))
		for _, c := range accepted {
			resolved[c.index] = true
		}
		remaining := rep.Diagnostics[:0]
		for i, d := range rep.Diagnostics {
			if !resolved[i] {
				remaining = append(remaining, d)
			}
		}
		rep.Diagnostics = remaining
	}

	return res, nil
}
