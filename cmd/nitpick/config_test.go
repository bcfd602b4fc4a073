package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetKoanf gives each test a clean config state.
func resetKoanf(t *testing.T) {
	t.Helper()
	k = koanf.New(".")
	t.Cleanup(func() { k = koanf.New(".") })
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".nitpick.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	resetKoanf(t)

	require.NoError(t, loadConfigFromPath(filepath.Join(t.TempDir(), "absent.yaml")))

	config := buildLintConfig(nil)
	assert.Equal(t, defaultPaths(), config.Paths)
	assert.False(t, config.Fix)
	assert.False(t, config.Verbose)
	assert.Equal(t, 0, config.MaxSameIssues)
	assert.True(t, config.PrintIssuedLines)
	assert.True(t, config.PrintRuleName)
	assert.Len(t, config.Rules, 6)
}

func TestLoadConfigFromFile(t *testing.T) {
	resetKoanf(t)

	path := writeConfigFile(t, `
verbose: true
check:
  paths:
    - "src/**/*.go"
  fix: true
  max-same-issues: 3
  print-lines: false
rules:
  max-blank-lines: 2
  disable:
    - no-tabs
`)
	require.NoError(t, loadConfigFromPath(path))

	config := buildLintConfig(nil)
	assert.Equal(t, []string{"src/**/*.go"}, config.Paths)
	assert.True(t, config.Fix)
	assert.True(t, config.Verbose)
	assert.Equal(t, 3, config.MaxSameIssues)
	assert.False(t, config.PrintIssuedLines)
	assert.Len(t, config.Rules, 5) // no-tabs disabled
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	resetKoanf(t)

	path := writeConfigFile(t, "check: [unclosed")
	err := loadConfigFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config file")
}

func TestEnvOverridesFile(t *testing.T) {
	resetKoanf(t)

	path := writeConfigFile(t, "check:\n  fix: false\n")
	t.Setenv("NITPICK_CHECK_FIX", "true")
	t.Setenv("NITPICK_VERBOSE", "true")

	require.NoError(t, loadConfigFromPath(path))

	config := buildLintConfig(nil)
	assert.True(t, config.Fix)
	assert.True(t, config.Verbose)
}

func TestPositionalArgsOverrideConfiguredPaths(t *testing.T) {
	resetKoanf(t)

	path := writeConfigFile(t, "check:\n  paths:\n    - \"from-file/**\"\n")
	require.NoError(t, loadConfigFromPath(path))

	config := buildLintConfig([]string{"cli/path.go"})
	assert.Equal(t, []string{"cli/path.go"}, config.Paths)
}

func TestBuildRuleOptionsSeverity(t *testing.T) {
	resetKoanf(t)

	path := writeConfigFile(t, `
rules:
  severity:
    no-crlf: error
    final-newline: warning
    bogus-rule: loud
`)
	require.NoError(t, loadConfigFromPath(path))

	opts := buildRuleOptions()
	require.NotNil(t, opts.Severity)
	assert.Len(t, opts.Severity, 2) // the unparseable value is dropped
	assert.Contains(t, opts.Severity, "no-crlf")
	assert.Contains(t, opts.Severity, "final-newline")
	assert.NotContains(t, opts.Severity, "bogus-rule")
}

func TestBuildRuleOptionsDefaults(t *testing.T) {
	resetKoanf(t)

	opts := buildRuleOptions()
	assert.Equal(t, 1, opts.MaxBlankLines)
	assert.Equal(t, 4, opts.TabWidth)
	assert.Empty(t, opts.Disabled)
	assert.Nil(t, opts.Severity)
}

func TestFallbackGetters(t *testing.T) {
	resetKoanf(t)
	require.NoError(t, k.Set("flag-key", true))
	require.NoError(t, k.Set("section.config-key", 7))

	assert.True(t, getBoolWithFallback("flag-key", "section.other", false))
	assert.Equal(t, 7, getIntWithFallback("missing", "section.config-key", 99))
	assert.Equal(t, 99, getIntWithFallback("missing", "also-missing", 99))
	assert.Equal(t, "fallback", getStringWithFallback("missing", "also-missing", "fallback"))
}

// setCheckFlag sets a flag on checkCmd as if the user passed it, restoring
// the flag's default and Changed state after the test.
func setCheckFlag(t *testing.T, name, value string) {
	t.Helper()
	f := checkCmd.Flags().Lookup(name)
	require.NotNil(t, f)
	require.NoError(t, checkCmd.Flags().Set(name, value))
	t.Cleanup(func() {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

// chdirWithConfig drops a .nitpick.yaml into a temp working directory so
// loadConfig picks it up the way a real invocation would.
func chdirWithConfig(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".nitpick.yaml"), []byte(content), 0o644))
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })
}

func TestLoadConfigFileValuesSurviveFlagDefaults(t *testing.T) {
	resetKoanf(t)
	chdirWithConfig(t, `
check:
  fix: true
  print-lines: false
rules:
  max-blank-lines: 3
`)

	require.NoError(t, loadConfig(checkCmd))

	// Unset flags must not shadow the config file with their defaults.
	config := buildLintConfig(nil)
	assert.True(t, config.Fix)
	assert.False(t, config.PrintIssuedLines)
	assert.Equal(t, 3, buildRuleOptions().MaxBlankLines)
}

func TestLoadConfigFlagsOverrideFile(t *testing.T) {
	resetKoanf(t)
	chdirWithConfig(t, "check:\n  max-same-issues: 3\n  fix: true\n")
	setCheckFlag(t, "max-same-issues", "7")
	setCheckFlag(t, "fix", "false")

	require.NoError(t, loadConfig(checkCmd))

	config := buildLintConfig(nil)
	assert.Equal(t, 7, config.MaxSameIssues)
	assert.False(t, config.Fix)
}

func TestDisableFlagReachesRuleOptions(t *testing.T) {
	resetKoanf(t)
	chdirWithConfig(t, "")
	setCheckFlag(t, "disable", "no-tabs")

	require.NoError(t, loadConfig(checkCmd))

	opts := buildRuleOptions()
	assert.Equal(t, []string{"no-tabs"}, opts.Disabled)
	assert.Len(t, buildLintConfig(nil).Rules, 5)
}

func TestDisableFromConfigFile(t *testing.T) {
	resetKoanf(t)
	chdirWithConfig(t, "rules:\n  disable:\n    - no-crlf\n")

	require.NoError(t, loadConfig(checkCmd))
	assert.Equal(t, []string{"no-crlf"}, buildRuleOptions().Disabled)
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	orig, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(orig) })

	require.NoError(t, initCmd.RunE(initCmd, nil))

	data, err := os.ReadFile(".nitpick.yaml")
	require.NoError(t, err)
	assert.Contains(t, string(data), "max-blank-lines: 1")

	// A second run refuses to clobber the file.
	err = initCmd.RunE(initCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// Unless forced.
	require.NoError(t, initCmd.Flags().Set("force", "true"))
	t.Cleanup(func() { _ = initCmd.Flags().Set("force", "false") })
	require.NoError(t, initCmd.RunE(initCmd, nil))
}

func TestDefaultPathsCoverCommonSourceFiles(t *testing.T) {
	paths := defaultPaths()
	assert.Contains(t, paths, "**/*.go")
	assert.Contains(t, paths, "**/*.html")
	assert.Contains(t, paths, "**/*.md")
}
