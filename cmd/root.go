package cmd

import (
	"fmt"
	"os"

	"zoomctl/pkg/logger"
	"zoomctl/pkg/tui"

	"github.com/spf13/cobra"
)

var (
	debug   bool
	noInput bool
)

var rootCmd = &cobra.Command{
	Use:   "zoomctl",
	Short: "A CLI for the HKUST upcoming Zoom meetings list",
	Long: `zoomctl downloads the upcoming Zoom meetings of HKUST courses, keeps them
in a local file grouped by major, and lets you search them by course details.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Setup(debug)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tui.Error(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Log HTTP requests and login steps to stderr")
	rootCmd.PersistentFlags().BoolVar(&noInput, "no-input", false, "Never prompt; fail instead of asking for credentials or another file")
}
