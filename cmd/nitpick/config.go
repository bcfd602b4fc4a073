package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/nitpicklint/nitpick"
	"github.com/nitpicklint/nitpick/internal/rules"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".nitpick.yaml"
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence). Only flags the user actually set are
	// loaded: letting flag defaults into koanf would shadow config-file keys,
	// since the fallback getters check the flag key first. Defaults live in
	// the getters instead.
	if err := k.Load(posflag.ProviderWithFlag(cmd.Flags(), ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(cmd.Flags(), f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (NITPICK_* prefix)
	if err := k.Load(env.Provider("NITPICK_", ".", func(s string) string {
		// NITPICK_CHECK_FIX -> check.fix
		// NITPICK_RULES_TAB_WIDTH -> rules.tab.width (hyphenated keys are
		// not reachable from the environment; use the config file for those)
		// NITPICK_VERBOSE -> verbose
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "NITPICK_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// buildLintConfig constructs the library's Config struct from koanf state.
// Positional args override configured paths.
func buildLintConfig(args []string) nitpick.Config {
	var paths []string
	switch {
	case len(args) > 0:
		paths = args
	case len(k.Strings("paths")) > 0:
		paths = k.Strings("paths")
	case len(k.Strings("check.paths")) > 0:
		paths = k.Strings("check.paths")
	default:
		paths = defaultPaths()
	}

	return nitpick.Config{
		Paths:            paths,
		Rules:            rules.Default(buildRuleOptions()),
		Fix:              getBoolWithFallback("fix", "check.fix", false),
		Verbose:          getBoolWithFallback("verbose", "verbose", false),
		MaxSameIssues:    getIntWithFallback("max-same-issues", "check.max-same-issues", 0),
		PrintIssuedLines: getBoolWithFallback("print-lines", "check.print-lines", true),
		PrintRuleName:    getBoolWithFallback("print-rule-name", "check.print-rule-name", true),
		UseColors:        getBoolWithFallback("color", "color", false),
	}
}

// buildRuleOptions constructs the rule set options from koanf state.
func buildRuleOptions() rules.Options {
	opts := rules.Options{
		MaxBlankLines: getIntWithFallback("max-blank-lines", "rules.max-blank-lines", 1),
		TabWidth:      getIntWithFallback("tab-width", "rules.tab-width", 4),
		Disabled:      getStringsWithFallback("disable", "rules.disable"),
	}

	if raw := k.StringMap("rules.severity"); len(raw) > 0 {
		opts.Severity = make(map[string]nitpick.Severity, len(raw))
		for name, value := range raw {
			sev, err := nitpick.ParseSeverity(value)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: rule %s: %v\n", name, err)
				continue
			}
			opts.Severity[name] = sev
		}
	}

	return opts
}

func defaultPaths() []string {
	return []string{
		"**/*.go",
		"**/*.md",
		"**/*.html",
		"**/*.css",
		"**/*.js",
		"**/*.yaml",
		"**/*.yml",
	}
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

// getStringsWithFallback checks the flag key first, then the config file key.
func getStringsWithFallback(flagKey, configKey string) []string {
	if v := k.Strings(flagKey); len(v) > 0 {
		return v
	}
	return k.Strings(configKey)
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}
