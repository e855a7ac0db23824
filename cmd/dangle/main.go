package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"dangle/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "dangle",
	Short:         "Trailing comma checker for JavaScript sources",
	Long:          `dangle checks comma-delimited constructs against a trailing-comma policy and can rewrite files to comply`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics to show (0 = use config)")
	rootCmd.PersistentFlags().String("paths", "", "path display mode (auto|absolute|relative|basename)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command, out *os.File) bool {
	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(out))
}
