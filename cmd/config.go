package cmd

import (
	"fmt"

	"zoomctl/pkg/config"
	"zoomctl/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage zoomctl configuration",
	Long: `View or edit your local configuration: the CAS login used by fetch
and the default location of the saved meeting list.
ZOOMCTL_USERNAME, ZOOMCTL_PASSWORD and ZOOMCTL_PATH override the saved values.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		changed := false
		if cmd.Flags().Changed("username") {
			cfg.Username, _ = cmd.Flags().GetString("username")
			changed = true
		}
		if cmd.Flags().Changed("default-path") {
			cfg.DefaultPath, _ = cmd.Flags().GetString("default-path")
			changed = true
		}
		if cmd.Flags().Changed("favourite-path") {
			cfg.FavouritePath, _ = cmd.Flags().GetString("favourite-path")
			changed = true
		}
		if forget, _ := cmd.Flags().GetBool("forget-password"); forget {
			cfg.Password = ""
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Println(tui.Accent("Configuration saved."))
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		if noInput {
			return fmt.Errorf("nothing to change; pass a flag or drop --no-input")
		}
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringP("username", "u", "", "Set the CAS username used by fetch")
	configCmd.Flags().StringP("default-path", "d", "", "Set the default meeting list location")
	configCmd.Flags().String("favourite-path", "", "Set the folder the file picker opens in")
	configCmd.Flags().Bool("forget-password", false, "Remove the saved password")
}
