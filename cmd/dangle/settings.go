package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"dangle/internal/config"
	"dangle/internal/diagfmt"
	"dangle/internal/rule"
)

// runSettings is the merged configuration of one invocation: dangle.toml
// discovered from the target, overridden by whatever flags were set.
type runSettings struct {
	rule     rule.Options
	maxDiag  int
	format   string
	pathMode diagfmt.PathMode
}

func resolveSettings(cmd *cobra.Command, target string) (runSettings, error) {
	startDir := target
	if info, err := os.Stat(target); err == nil && !info.IsDir() {
		startDir = filepath.Dir(target)
	}

	cfg := config.Default()
	if manifest, ok, err := config.Load(startDir); err != nil {
		return runSettings{}, err
	} else if ok {
		cfg = manifest.Config
	}

	ruleOpts, err := cfg.RuleOptions()
	if err != nil {
		return runSettings{}, err
	}
	if cmd.Flags().Changed("mode") {
		s, _ := cmd.Flags().GetString("mode")
		mode, err := rule.ParseMode(s)
		if err != nil {
			return runSettings{}, err
		}
		ruleOpts.Mode = mode
	}
	if cmd.Flags().Changed("functions") {
		ruleOpts.Functions, _ = cmd.Flags().GetBool("functions")
	}

	maxDiag := cfg.Check.MaxDiagnostics
	if v, _ := cmd.Root().PersistentFlags().GetInt("max-diagnostics"); v > 0 {
		maxDiag = v
	}

	format := cfg.Output.Format
	if cmd.Flags().Changed("format") {
		format, _ = cmd.Flags().GetString("format")
	}

	paths := cfg.Output.Paths
	if p, _ := cmd.Root().PersistentFlags().GetString("paths"); p != "" {
		paths = p
	}

	return runSettings{
		rule:     ruleOpts,
		maxDiag:  maxDiag,
		format:   format,
		pathMode: diagfmt.ParsePathMode(paths),
	}, nil
}
