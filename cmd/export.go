package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"zoomctl/pkg/exporter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export matching courses to an ICS calendar file",
	Long: `Export the meeting times of the matching courses to an ICS file.
Every dated time slot becomes one event; webinars have no time and are skipped.
` + filterHelp,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := queryFromFlags(cmd)
		if err != nil {
			if isQueryError(err) {
				_ = cmd.Help()
				fmt.Println()
			}
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		length, _ := cmd.Flags().GetDuration("length")
		if length <= 0 {
			return fmt.Errorf("--length must be positive, got %s", length)
		}

		// Ensure it has .ics suffix
		if !strings.HasSuffix(output, ".ics") {
			output += ".ics"
		}

		path, _ := cmd.Flags().GetString("file")
		dir, _, err := loadDirectory(path)
		if err != nil {
			return err
		}

		rows := q.Evaluate(dir)
		log.Debug().Str("query", q.String()).Int("matches", len(rows)).Msg("query evaluated")
		if len(rows) == 0 {
			fmt.Println("No courses matched, nothing to export.")
			return nil
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		n, err := exporter.GenerateICS(rows, length, file)
		if err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported %d meeting(s) of %d course(s) to %s\n", n, len(rows), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addQueryFlags(exportCmd)
	exportCmd.Flags().StringP("output", "o", "zoom_meetings.ics", "Output file path")
	exportCmd.Flags().Duration("length", time.Hour, "Length of each calendar event")
}
