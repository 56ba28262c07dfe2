package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TACC/hazmapper-qgis-plugin/internal/logging"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	flagVerbose   bool
	flagLogFormat string
)

var rootCmd = &cobra.Command{
	Use:   "hazmapper-discovery",
	Short: "Discover DesignSafe published projects with Hazmapper maps",
	Long: "hazmapper-discovery crawls the DesignSafe publications catalog,\n" +
		"detects which projects carry Hazmapper maps and writes the static\n" +
		"configuration artifacts the QGIS plugin consumes.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(flagVerbose, flagLogFormat, nil)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "log format: text or json")
	rootCmd.AddCommand(discoverCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
