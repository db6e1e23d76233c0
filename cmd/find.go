package cmd

import (
	"encoding/json"
	"fmt"

	"zoomctl/pkg/query"
	"zoomctl/pkg/tui"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Find course(s) in the saved meeting list",
	Long:  "Find courses in the saved meeting list by their details.\n" + filterHelp,
	Example: `  zoomctl find -a -x nl
  zoomctl find -m 'C***' -s ct
  zoomctl find -c 'COMP1***?' -n '~Lab'`,
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

		format, _ := cmd.Flags().GetString("output")
		if format != "table" && format != "json" && format != "yaml" {
			_ = cmd.Help()
			return fmt.Errorf("unknown output format %q, expected table, json or yaml", format)
		}

		file, _ := cmd.Flags().GetString("file")
		dir, _, err := loadDirectory(file)
		if err != nil {
			return err
		}

		rows := q.Evaluate(dir)
		log.Debug().Str("query", q.String()).Int("matches", len(rows)).Msg("query evaluated")
		return printRows(rows, q.Columns(), format)
	},
}

func printRows(rows []query.Row, cols []query.Attribute, format string) error {
	switch format {
	case "json", "yaml":
		projected := make([]query.Projection, 0, len(rows))
		for _, r := range rows {
			projected = append(projected, r.Project(cols))
		}

		var out []byte
		var err error
		if format == "json" {
			out, err = json.MarshalIndent(projected, "", "  ")
		} else {
			out, err = yaml.Marshal(projected)
		}
		if err != nil {
			return fmt.Errorf("failed to encode results: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	if len(rows) == 0 {
		fmt.Println("No courses matched.")
		return nil
	}

	fmt.Println(tui.RenderTable(rows, cols))
	fmt.Printf("%d course(s) matched.\n", len(rows))
	return nil
}

func init() {
	rootCmd.AddCommand(findCmd)
	addQueryFlags(findCmd)
	findCmd.Flags().StringP("output", "o", "table", "Output format: table, json or yaml")
}
