// Package main provides the pubpage CLI entry point.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// jsonOutput controls whether command results are printed as JSON
var jsonOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pubpage",
	Short: "Static publications page generator",
	Long: `pubpage turns a BibTeX bibliography into a static, browsable HTML page.

Entries are classified into topic categories with keyword rules, grouped
by year, and rendered with color-coded topic filters, collapsible year
sections, and per-entry BibTeX toggles. Preprints are excluded.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Print results as JSON instead of human-readable output")
	rootCmd.Version = Version
}
