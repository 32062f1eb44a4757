package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/caps-tum/pubpage/internal/bibtex"
	"github.com/caps-tum/pubpage/internal/config"
	"github.com/caps-tum/pubpage/internal/site"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	generateLayout string
	generateConfig string
	generateTitle  string
)

func init() {
	generateCmd.Flags().StringVar(&generateLayout, "layout", "", "Page layout: "+strings.Join(site.ValidLayouts, " or "))
	generateCmd.Flags().StringVar(&generateConfig, "config", "", "Path to a "+config.ConfigFile+" config file")
	generateCmd.Flags().StringVar(&generateTitle, "title", "", "Page title (overrides config)")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate <input.bib> <output.html>",
	Short: "Generate a publications HTML page from a BibTeX file",
	Long: `Generate a publications HTML page from a BibTeX file.

The input is parsed tolerantly, preprints are dropped, and every retained
entry is assigned one topic category before rendering.

Examples:
  pubpage generate publications.bib publications.html
  pubpage generate publications.bib publications.html --layout collapsible
  pubpage generate publications.bib publications.html --config site/pubpage.yml --title "Publications"`,
	Args: cobra.ExactArgs(2),
	RunE: runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Load .env if present, so PUBPAGE_CONFIG can come from the working dir.
	_ = godotenv.Load()

	inputPath, outputPath := args[0], args[1]

	cfg, err := config.Load(config.ResolvePath(generateConfig, inputPath))
	if err != nil {
		exitWithError(ExitConfigError, "loading config: %v", err)
	}
	if generateTitle != "" {
		cfg.Title = generateTitle
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		exitWithError(ExitDataError, "reading %s: %v", inputPath, err)
	}

	entries := bibtex.Parse(string(data))

	page, err := site.Build(entries, cfg)
	if err != nil {
		exitWithError(ExitConfigError, "building page: %v", err)
	}

	opts := site.DefaultOptions()
	if generateLayout != "" {
		opts.Layout = generateLayout
	} else if cfg.Layout != "" {
		opts.Layout = cfg.Layout
	}
	opts.Colors = cfg.Colors
	opts.Tints = cfg.Tints

	html, err := site.Render(page, opts)
	if err != nil {
		exitWithError(ExitError, "rendering page: %v", err)
	}

	if err := os.WriteFile(outputPath, []byte(html), 0644); err != nil {
		exitWithError(ExitError, "writing %s: %v", outputPath, err)
	}

	if jsonOutput {
		return outputJSON(GenerateResponse{
			Status:  "written",
			Path:    outputPath,
			Entries: page.Total,
			Years:   len(page.Sections),
			Layout:  opts.Layout,
		})
	}
	fmt.Printf("Written: %s (entries=%d, years=%d)\n", outputPath, page.Total, len(page.Sections))
	return nil
}
