package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nitpicklint/nitpick"
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Lint files for source-hygiene problems",
	Long: `Check files for trailing whitespace, CRLF line endings, missing final
newlines, blank-line runs, tab indentation, and uppercase HTML tags.
With --fix, safe fixes are applied and changed files rewritten in place.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, args []string) error {
		return runCheck(args)
	},
}

func init() {
	f := checkCmd.Flags()
	f.StringSlice("paths", nil, "File patterns to lint (overridden by positional args)")
	f.Bool("fix", false, "Apply fixes and rewrite changed files")
	f.Int("max-warnings", -1, "Exit 1 when more than this many warnings remain (-1 = unlimited)")
	f.String("output-format", "", "Output format: issues|json")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-rule-name", true, "Show (rule) suffix on issues")
	f.Int("max-blank-lines", 1, "Allowed consecutive blank lines")
	f.Int("tab-width", 4, "Spaces per tab when fixing indentation")
	f.StringSlice("disable", nil, "Rule names to disable")
}

// runCheck is shared between `nitpick check` and the bare `nitpick` root
// command.
func runCheck(args []string) error {
	config := buildLintConfig(args)

	result, err := nitpick.Lint(config)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "check.output-format", "")
	format := nitpick.DetermineOutputFormat(outputFormat, quiet)

	if !quiet {
		nitpick.WriteOutput(os.Stdout, result, format, config)
	}

	// Exit policy: counts are taken after fixed diagnostics were pruned, so
	// a --fix run only fails on what is still wrong.
	if result.ErrorCount > 0 || len(result.Failed) > 0 {
		os.Exit(1)
	}

	maxWarnings := getIntWithFallback("max-warnings", "check.max-warnings", -1)
	if maxWarnings >= 0 && result.WarningCount > maxWarnings {
		if !quiet {
			fmt.Fprintf(os.Stderr, "\n%d warnings exceed the --max-warnings limit of %d\n",
				result.WarningCount, maxWarnings)
		}
		os.Exit(1)
	}

	return nil
}
