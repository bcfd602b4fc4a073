package nitpick

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Config holds one run's settings. It is built once by the caller and passed
// by value through the pipeline; nothing in the core mutates or caches it.
type Config struct {
	Paths []string // glob patterns for files to lint
	Rules []Rule   // analyzer rules to run against each file

	Fix     bool // apply fixes and rewrite changed files
	Verbose bool // enable progress logging

	// Output configuration
	MaxSameIssues    int  // 0 = unlimited
	PrintIssuedLines bool // show source lines with issues
	PrintRuleName    bool // show (rule-name) suffix
	UseColors        bool // force color output
}

// FileFailure records a file whose fix pipeline aborted. The file on disk is
// untouched; sibling files are unaffected.
type FileFailure struct {
	Path   string
	Reason string
}

// LintResult contains the outcome of one lint run. Issue and severity counts
// reflect the report after fixed diagnostics were pruned.
type LintResult struct {
	Issues         []Issue
	FilesScanned   int
	FilesSkipped   int
	FilesFixed     []string // files rewritten because fixes changed them
	FixedCount     int      // diagnostics resolved by applied fixes
	ErrorCount     int
	WarningCount   int
	TruncatedCount int // issues removed due to limits
	Failed         []FileFailure
}

// Lint discovers files, runs every configured rule against each one, and —
// when config.Fix is set — applies the fix pipeline and rewrites changed
// files. Files are processed concurrently; each file's pipeline is strictly
// sequential. Read and write failures abort the run; a broken fix pipeline
// on one file only fails that file.
func Lint(config Config) (*LintResult, error) {
	scanner := newFileScanner()
	files, stats, err := scanner.discover(config.Paths)
	if err != nil {
		return nil, fmt.Errorf("expanding patterns: %w", err)
	}

	if config.Verbose && stats.FilesSkipped > 0 {
		fmt.Printf("Scanning %d files (%d ignored)\n", stats.FilesScanned, stats.FilesSkipped)
	}

	result := &LintResult{
		FilesScanned: stats.FilesScanned,
		FilesSkipped: stats.FilesSkipped,
	}

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, path := range files {
		path := path
		g.Go(func() error {
			issues, fixed, changed, failure, err := lintFile(path, config)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			result.Issues = append(result.Issues, issues...)
			result.FixedCount += fixed
			if changed {
				result.FilesFixed = append(result.FilesFixed, path)
			}
			if failure != nil {
				result.Failed = append(result.Failed, *failure)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sortIssues(result.Issues)
	sort.Strings(result.FilesFixed)
	sort.Slice(result.Failed, func(i, j int) bool { return result.Failed[i].Path < result.Failed[j].Path })

	if config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitSameIssues(result.Issues, config.MaxSameIssues)
	}

	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError.String():
			result.ErrorCount++
		case SeverityWarning.String():
			result.WarningCount++
		}
	}

	return result, nil
}

// lintFile runs the per-file pipeline: analyze, optionally fix and rewrite,
// then convert the remaining diagnostics to issues.
func lintFile(path string, config Config) (issues []Issue, fixed int, changed bool, failure *FileFailure, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, false, nil, fmt.Errorf("reading %s: %w", path, err)
	}

	rep := &Report{Path: path, Source: string(data)}
	for _, rule := range config.Rules {
		rep.Diagnostics = append(rep.Diagnostics, rule.Check(path, rep.Source)...)
	}

	if config.Fix {
		before := len(rep.Diagnostics)
		res, fixErr := FixReport(rep)
		if fixErr != nil {
			// The file stays untouched; report it and keep going with the
			// unpruned diagnostics.
			failure = &FileFailure{Path: path, Reason: fixErr.Error()}
		} else {
			fixed = before - len(rep.Diagnostics)
			if res.Changed {
				if err := rewriteFile(path, res.Output); err != nil {
					return nil, 0, false, nil, err
				}
				changed = true
			}
		}
	}

	issues = issuesFromReport(rep, newLineIndex(rep.Source))
	return issues, fixed, changed, failure, nil
}

// sortIssues orders issues by file, then line, then column, then rule, so
// concurrent runs produce identical output.
func sortIssues(issues []Issue) {
	sort.Slice(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		if issues[i].Pos.Column != issues[j].Pos.Column {
			return issues[i].Pos.Column < issues[j].Pos.Column
		}
		return issues[i].FromLinter < issues[j].FromLinter
	})
}

// limitSameIssues caps how many times the same message appears.
func limitSameIssues(issues []Issue, maxSame int) ([]Issue, int) {
	messageCounts := make(map[string]int)
	filtered := make([]Issue, 0, len(issues))

	for _, issue := range issues {
		if messageCounts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered, len(issues) - len(filtered)
}
