package cmd

import (
	"fmt"

	"zoomctl/pkg/tui"

	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load [path]",
	Short: "Check a saved meeting list and show what it contains",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, path, err := loadDirectory(firstArg(args))
		if err != nil {
			return err
		}

		fmt.Println(tui.Accent(fmt.Sprintf("Loaded %s", path)))
		if len(dir) == 0 {
			fmt.Println("The meeting list is empty.")
			return nil
		}

		for _, m := range dir {
			fmt.Printf("  %s  %3d course(s)\n", m.Abbr, len(m.Courses))
		}
		fmt.Printf("%d course(s) in %d major(s).\n", dir.CourseCount(), len(dir))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loadCmd)
}
