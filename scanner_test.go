package nitpick

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscoverGlobPatterns(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.txt", "a")
	writeTestFile(t, dir, "sub/b.txt", "b")
	writeTestFile(t, dir, "sub/c.md", "c")

	s := &fileScanner{}
	files, stats, err := s.discover([]string{filepath.Join(dir, "**/*.txt")})
	require.NoError(t, err)

	assert.Len(t, files, 2)
	assert.Equal(t, 2, stats.FilesDiscovered)
	assert.Equal(t, 2, stats.FilesScanned)
	assert.Equal(t, 0, stats.FilesSkipped)
}

func TestDiscoverDeduplicates(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "a.txt", "a")

	s := &fileScanner{}
	files, stats, err := s.discover([]string{
		filepath.Join(dir, "*.txt"),
		filepath.Join(dir, "**/*.txt"),
	})
	require.NoError(t, err)

	assert.Len(t, files, 1)
	assert.Equal(t, 1, stats.FilesScanned)
}

func TestDiscoverIgnoresDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "dir.txt"), 0o755))
	writeTestFile(t, dir, "real.txt", "x")

	s := &fileScanner{}
	files, _, err := s.discover([]string{filepath.Join(dir, "*.txt")})
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "real.txt"), files[0])
}

func TestDiscoverSkipsGitDirectory(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, ".git/config.txt", "x")
	writeTestFile(t, dir, "keep.txt", "x")

	s := &fileScanner{}
	files, stats, err := s.discover([]string{filepath.Join(dir, "**/*.txt")})
	require.NoError(t, err)

	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "keep.txt"), files[0])
	assert.Equal(t, 1, stats.FilesSkipped)
}

func TestDiscoverMissingPattern(t *testing.T) {
	s := &fileScanner{}
	files, stats, err := s.discover([]string{filepath.Join(t.TempDir(), "*.nope")})
	require.NoError(t, err)
	assert.Empty(t, files)
	assert.Equal(t, 0, stats.FilesDiscovered)
}

func TestShouldSkipGitPathComponents(t *testing.T) {
	s := &fileScanner{}

	assert.True(t, s.shouldSkip(filepath.Join(".git", "HEAD")))
	assert.True(t, s.shouldSkip(filepath.Join("sub", ".git", "objects", "x")))
	assert.False(t, s.shouldSkip(filepath.Join("sub", "gitlog.txt")))
	assert.False(t, s.shouldSkip("dot.github.txt"))
}
