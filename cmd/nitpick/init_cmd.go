package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .nitpick.yaml config file",
	Long:  `Create a .nitpick.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".nitpick.yaml"); err == nil && !force {
			return fmt.Errorf(".nitpick.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".nitpick.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .nitpick.yaml")
		return nil
	},
}

const defaultConfig = `# nitpick configuration
# Docs: https://github.com/nitpicklint/nitpick

# Shared settings
verbose: false

# Check settings
check:
  paths:
    - "**/*.go"
    - "**/*.md"
    - "**/*.html"
    - "**/*.css"
    - "**/*.js"
    - "**/*.yaml"
    - "**/*.yml"
  fix: false
  max-warnings: -1         # -1 = unlimited
  output-format: issues    # issues | json
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
  print-rule-name: true

# Rule settings
rules:
  max-blank-lines: 1
  tab-width: 4
  disable: []
  severity:
    html-tag-case: error
    trailing-whitespace: warning
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
