package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dangle/internal/diagfmt"
	"dangle/internal/driver"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [flags] <file>",
	Short: "Dump the token stream of a single file",
	Long:  "Tokenize one JavaScript file and print the resulting tokens, for debugging the lexer.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	tokensCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokens(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	if maxDiagnostics <= 0 {
		maxDiagnostics = 256
	}

	result, err := driver.Tokenize(args[0], maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenize failed: %w", err)
	}

	switch format {
	case "pretty":
		if err := diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, result.FileSet); err != nil {
			return err
		}
	case "json":
		if err := diagfmt.FormatTokensJSON(os.Stdout, result.Tokens); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	// Lex errors go to stderr so the token dump stays parseable.
	if result.Bag.Len() > 0 {
		result.Bag.Sort()
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:   useColor(cmd, os.Stderr),
			Context: true,
		})
	}
	return nil
}
