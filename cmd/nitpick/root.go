package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "nitpick",
	Short: "Source-hygiene linter with automatic fixing",
	Long: `Lint source trees for textual hygiene problems: trailing whitespace,
CRLF line endings, missing final newlines, blank-line runs, tab indentation,
and uppercase HTML tags. Run with --fix to rewrite files in place.`,
	// Default behavior: run check when no subcommand is given.
	// We must call loadConfig here because PreRunE of checkCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runCheck(args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".nitpick.yaml", "Config file path")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
