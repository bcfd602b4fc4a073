package nitpick

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks file discovery statistics.
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// fileScanner expands glob patterns into the set of files to lint. The
// .gitignore (when present) is compiled once at construction; the scanner
// itself holds no other state.
type fileScanner struct {
	ignore *ignore.GitIgnore
}

// newFileScanner builds a scanner rooted in the current directory.
// A missing or unreadable .gitignore degrades gracefully to no filtering.
func newFileScanner() *fileScanner {
	gi, err := ignore.CompileIgnoreFile(".gitignore")
	if err != nil {
		gi = nil
	}
	return &fileScanner{ignore: gi}
}

// discover expands the glob patterns to a deduplicated list of regular
// files, filtering out ignored paths.
func (s *fileScanner) discover(patterns []string) ([]string, ScanStats, error) {
	var files []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if s.shouldSkip(match) {
				stats.FilesSkipped++
				continue
			}
			files = append(files, match)
			seen[match] = true
			stats.FilesScanned++
		}
	}

	return files, stats, nil
}

// shouldSkip reports whether a file is excluded from linting.
//
// Two-layer filtering:
//  1. Path check (fast): anything under a .git directory.
//  2. Gitignore check: gitignored files (only for relative paths; absolute
//     paths like /tmp/... are outside the project and not affected).
func (s *fileScanner) shouldSkip(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == ".git" {
			return true
		}
	}

	if !filepath.IsAbs(path) && s.ignore != nil && s.ignore.MatchesPath(path) {
		return true
	}

	return false
}
