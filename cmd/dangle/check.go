package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dangle/internal/diagfmt"
	"dangle/internal/driver"
	"dangle/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file|directory>...",
	Short: "Check trailing commas in JavaScript sources",
	Long:  "Scan files or directories for trailing comma violations against the configured mode and report findings.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("mode", "", "trailing comma mode (never|always|always-multiline|only-multiline)")
	checkCmd.Flags().Bool("functions", false, "also check function parameter lists and call arguments")
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|short|sarif)")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("show-fixes", false, "include fix suggestions in output")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("no-cache", false, "disable the findings disk cache")
	checkCmd.Flags().Bool("ui", false, "show per-file progress while checking")
}

func runCheck(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd, args[0])
	if err != nil {
		return err
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	withUI, err := cmd.Flags().GetBool("ui")
	if err != nil {
		return err
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return err
	}
	showFixes, err := cmd.Flags().GetBool("show-fixes")
	if err != nil {
		return err
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}

	switch settings.format {
	case "pretty", "json", "short", "sarif":
	default:
		return fmt.Errorf("unknown format: %s", settings.format)
	}

	var cache *driver.DiskCache
	if !noCache {
		// A broken cache directory degrades to a cold run, not a failure.
		if c, cacheErr := driver.OpenDiskCache("dangle"); cacheErr == nil {
			cache = c
		}
	}

	opts := driver.Options{
		Rule:           settings.rule,
		MaxDiagnostics: settings.maxDiag,
		Jobs:           jobs,
		Cache:          cache,
		Timings:        showTimings,
	}

	var (
		fileSet *source.FileSet
		results []driver.FileResult
	)
	if withUI && isTerminal(os.Stdout) {
		fileSet, results, err = lintWithUI(cmd.Context(), "checking trailing commas", args, opts)
	} else {
		fileSet, results, err = driver.LintTargets(cmd.Context(), args, opts, nil)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	merged := driver.MergeBags(results, settings.maxDiag)

	switch settings.format {
	case "pretty":
		diagfmt.Pretty(os.Stdout, merged, fileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stdout),
			Context:   true,
			PathMode:  settings.pathMode,
			ShowNotes: withNotes,
			ShowFixes: showFixes,
		})
	case "json":
		jsonOpts := diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         settings.pathMode,
			Max:              settings.maxDiag,
			IncludeNotes:     withNotes,
			IncludeFixes:     showFixes,
		}
		if err := diagfmt.JSON(os.Stdout, merged, fileSet, jsonOpts); err != nil {
			return fmt.Errorf("failed to format diagnostics: %w", err)
		}
	case "short":
		diagfmt.Short(os.Stdout, merged, fileSet, settings.pathMode)
	case "sarif":
		meta := diagfmt.SarifRunMeta{
			ToolName:    "dangle",
			ToolVersion: "0.1.0",
		}
		if err := diagfmt.Sarif(os.Stdout, merged, fileSet, meta); err != nil {
			return fmt.Errorf("failed to format diagnostics: %w", err)
		}
	}

	if showTimings {
		printTimings(os.Stderr, results)
	}

	if merged.HasWarnings() {
		// Suppress cobra usage output; the findings are the message.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

func printTimings(w *os.File, results []driver.FileResult) {
	for _, r := range results {
		if r.Timing == nil {
			continue
		}
		fmt.Fprintf(w, "timings %s:\n", r.Path)
		for _, p := range r.Timing.Phases {
			fmt.Fprintf(w, "  %-10s %7.2f ms\n", p.Name, p.DurationMS)
		}
		fmt.Fprintf(w, "  %-10s %7.2f ms\n", "total", r.Timing.TotalMS)
	}
}
