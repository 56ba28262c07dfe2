package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/TACC/hazmapper-qgis-plugin/internal/config"
	"github.com/TACC/hazmapper-qgis-plugin/internal/discovery"
	"github.com/TACC/hazmapper-qgis-plugin/internal/emit"
)

var (
	flagConfig     string
	flagShort      bool
	flagDetector   string
	flagBaseURL    string
	flagFeedURL    string
	flagDelay      time.Duration
	flagPythonOut  string
	flagMarkdown   string
	flagJSONOut    string
	flagDocxReport string
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Crawl the catalog and emit the configuration artifacts",
	Long: "Crawl the DesignSafe published-projects catalog, check each project\n" +
		"for Hazmapper maps and write the Python-literal module, the Markdown\n" +
		"index and the raw JSON dump (plus an optional Word report).",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		applyFlags(cmd, &cfg)

		source, detector := discovery.Build(cfg)
		result, err := discovery.Run(cmd.Context(), cfg, source, detector)
		if err != nil {
			return err
		}

		dest := emit.Destinations{
			PythonPath:   cfg.PythonPath,
			MarkdownPath: cfg.MarkdownPath,
			JSONPath:     cfg.JSONPath,
			DocxPath:     cfg.DocxPath,
		}
		if err := emit.Emit(result, dest); err != nil {
			return err
		}

		if len(result.Projects) > 0 {
			fmt.Println(emit.Summary(result))
		}
		fmt.Printf("Found %d project(s) with %d Hazmapper map(s)\n",
			len(result.Projects), result.MapCount())
		fmt.Printf("Configuration written to: %s\n", dest.PythonPath)
		fmt.Printf("Index written to: %s\n", dest.MarkdownPath)
		fmt.Printf("Raw data written to: %s\n", dest.JSONPath)
		if dest.DocxPath != "" {
			fmt.Printf("Report written to: %s\n", dest.DocxPath)
		}
		return nil
	},
}

func init() {
	f := discoverCmd.Flags()
	f.StringVarP(&flagConfig, "config", "c", "", "YAML config file")
	f.BoolVar(&flagShort, "short", false, "cap total fetched records (testing mode)")
	f.StringVar(&flagDetector, "detector", "", "map detection strategy: embedded, lookup or hybrid")
	f.StringVar(&flagBaseURL, "base-url", "", "DesignSafe API root")
	f.StringVar(&flagFeedURL, "feed-url", "", "use the catalog RSS/Atom feed as listing source")
	f.DurationVar(&flagDelay, "delay", 0, "pause between API calls (default 150ms)")
	f.StringVar(&flagPythonOut, "python-output", "", "Python-literal module path")
	f.StringVar(&flagMarkdown, "markdown-output", "", "Markdown index path")
	f.StringVar(&flagJSONOut, "json-output", "", "raw JSON dump path")
	f.StringVar(&flagDocxReport, "docx-report", "", "also write a Word report to this path")
}

// applyFlags lets explicitly set flags override config file values.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("short") {
		cfg.Short = flagShort
	}
	if flagDetector != "" {
		cfg.Detector = flagDetector
	}
	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
	}
	if flagFeedURL != "" {
		cfg.FeedURL = flagFeedURL
	}
	if cmd.Flags().Changed("delay") {
		cfg.Delay = config.Duration(flagDelay)
	}
	if flagPythonOut != "" {
		cfg.PythonPath = flagPythonOut
	}
	if flagMarkdown != "" {
		cfg.MarkdownPath = flagMarkdown
	}
	if flagJSONOut != "" {
		cfg.JSONPath = flagJSONOut
	}
	if flagDocxReport != "" {
		cfg.DocxPath = flagDocxReport
	}
}
