package tui

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"zoomctl/pkg/config"
	"zoomctl/pkg/directory"
	"zoomctl/pkg/scraper"

	"github.com/charmbracelet/huh"
)

// CredentialPrompt asks for the ITSC account name and password.
type CredentialPrompt struct{}

var _ scraper.CredentialProvider = CredentialPrompt{}

func (CredentialPrompt) Credentials() (scraper.Credentials, error) {
	var creds scraper.Credentials

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Login required").
				Description("The meeting list is behind the campus login.\nYour password is only used for this run."),
			huh.NewInput().
				Title("ITSC account name").
				Value(&creds.Username).
				Validate(notEmpty("account name")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&creds.Password).
				Validate(notEmpty("password")),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return scraper.Credentials{}, err
	}
	return creds, nil
}

// PathPrompt offers a file picker when the directory file cannot be loaded.
type PathPrompt struct{}

var _ directory.PathProvider = PathPrompt{}

func (PathPrompt) FallbackPath(failed string, cause error) (string, error) {
	pick := true

	confirm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Could not load %s", failed)).
				Description(cause.Error() + "\nDo you want to choose another file?").
				Value(&pick),
		),
	).WithTheme(GetTheme())

	if err := confirm.Run(); err != nil {
		return "", err
	}
	if !pick {
		return "", errors.New("no other file chosen")
	}

	start := startDirectory(failed)
	if cfg, err := config.Load(); err == nil && cfg.FavouritePath != "" {
		start = startDirectory(filepath.Join(cfg.FavouritePath, "x"))
	}

	var selected string
	picker := huh.NewForm(
		huh.NewGroup(
			huh.NewFilePicker().
				Title("Select a saved meeting list").
				Description("Saved by 'zoomctl fetch', usually a .json file.").
				CurrentDirectory(start).
				AllowedTypes([]string{".json"}).
				Value(&selected).
				Height(12),
		),
	).WithTheme(GetTheme())

	if err := picker.Run(); err != nil {
		return "", err
	}
	if selected == "" {
		return "", errors.New("no other file chosen")
	}
	return selected, nil
}

// startDirectory returns the closest existing parent of path, or the home directory.
func startDirectory(path string) string {
	for dir := filepath.Dir(path); dir != "" && dir != "."; dir = filepath.Dir(dir) {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
		if parent := filepath.Dir(dir); parent == dir {
			break
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

func notEmpty(what string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s cannot be empty", what)
		}
		return nil
	}
}
