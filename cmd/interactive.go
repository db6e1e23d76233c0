package cmd

import (
	"zoomctl/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to fetch meetings, search courses, and export calendars interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunTUI(func() error { return runFetch("", 0) })
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
