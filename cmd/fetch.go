package cmd

import (
	"errors"
	"fmt"
	"time"

	"zoomctl/pkg/config"
	"zoomctl/pkg/directory"
	"zoomctl/pkg/scraper"
	"zoomctl/pkg/tui"

	"github.com/charmbracelet/huh/spinner"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [path]",
	Short: "Fetch the upcoming Zoom meetings and save them locally",
	Long: `Download the upcoming Zoom meetings page, logging in through CAS if needed,
and save the meetings grouped by major to path (or the configured default).
Every fetch replaces the saved list completely.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		maxAge, _ := cmd.Flags().GetDuration("max-age")
		return runFetch(firstArg(args), maxAge)
	},
}

func runFetch(explicitPath string, maxAge time.Duration) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path, err := config.DirectoryPath(cfg, explicitPath)
	if err != nil {
		return err
	}

	if maxAge > 0 {
		if age, err := directory.Age(path); err == nil && age < maxAge {
			fmt.Printf("The meeting list at %s is only %s old, skipping fetch (--max-age %s).\n", path, age.Round(time.Second), maxAge)
			return nil
		}
	}

	configured := scraper.Credentials{Username: cfg.Username, Password: cfg.Password}
	var prompt scraper.CredentialProvider
	if !noInput {
		prompt = tui.CredentialPrompt{}
	}
	provider := scraper.PreferConfigured(configured, prompt)

	client := scraper.NewClient()
	start := time.Now()

	refresh := func() (directory.Directory, error) {
		return directory.Refresh(client, provider, path)
	}

	var dir directory.Directory
	// The login prompt cannot run underneath a spinner
	if (configured.Username != "" && configured.Password != "") || noInput {
		dir, err = withSpinner(runSpinner, refresh)
	} else {
		fmt.Println(tui.Accent("Fetching upcoming Zoom meetings..."))
		dir, err = refresh()
	}

	if err != nil {
		if errors.Is(err, scraper.ErrInvalidCredentials) {
			return fmt.Errorf("%w\nRun 'zoomctl config' to update your saved login", err)
		}
		return fmt.Errorf("fetch failed: %w", err)
	}

	elapsed := time.Since(start)
	log.Debug().Dur("elapsed", elapsed).Int("majors", len(dir)).Int("courses", dir.CourseCount()).Msg("fetch finished")

	if dir.CourseCount() == 0 {
		fmt.Println(tui.Error("No meetings were found on the page."))
	}

	fmt.Printf("Fetched %d course(s) in %d major(s) in %.3f second(s). The result is located at %s.\n",
		dir.CourseCount(), len(dir), elapsed.Seconds(), path)
	return nil
}

func runSpinner(action func()) error {
	return spinner.New().
		Title("Fetching upcoming Zoom meetings...").
		Action(action).
		Run()
}

// withSpinner runs fetch inside spin. A spinner failure wins over the fetch
// result, since the action may not have finished.
func withSpinner(spin func(func()) error, fetch func() (directory.Directory, error)) (directory.Directory, error) {
	var (
		dir directory.Directory
		err error
	)
	if spinErr := spin(func() { dir, err = fetch() }); spinErr != nil {
		return nil, fmt.Errorf("spinner failed: %w", spinErr)
	}
	return dir, err
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().Duration("max-age", 0, "Skip the download if the saved list is younger than this, e.g. 12h")
}
