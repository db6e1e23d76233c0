package tui

import (
	"fmt"
	"strings"

	"zoomctl/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI shows the settings menu until the user goes back.
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Settings").
					Options(
						huh.NewOption("Save ITSC login", "login"),
						huh.NewOption("Forget saved password", "forget"),
						huh.NewOption("Default meeting list path", "default"),
						huh.NewOption("File picker folder", "favourite"),
						huh.NewOption("Change accent colour", "theme"),
						huh.NewOption("Show settings", "view"),
						huh.NewOption("Back", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "login":
			err = runSetLoginTUI(cfg)
		case "forget":
			cfg.Password = ""
			if err = config.Save(cfg); err == nil {
				fmt.Println(accentStyle.Render("\n✅ Password removed. You will be asked for it on the next fetch.\n"))
			}
		case "default":
			err = runSetPathTUI(cfg, "Default meeting list path", "Where 'fetch' saves and 'find' reads the meeting list.", &cfg.DefaultPath)
		case "favourite":
			err = runSetPathTUI(cfg, "File picker folder", "Where the file picker opens when a meeting list cannot be loaded.", &cfg.FavouritePath)
		case "theme":
			err = runSetThemeTUI(cfg)
		case "view":
			printConfig(cfg)
		}

		if err != nil {
			return err
		}
	}
}

func printConfig(cfg *config.AppConfig) {
	path, _ := config.DirectoryPath(cfg, "")

	fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.zoomctl.json) ---"))
	if cfg.Username == "" {
		fmt.Println("ITSC Account: Not set")
	} else {
		fmt.Printf("ITSC Account: %s\n", cfg.Username)
	}
	if cfg.Password == "" {
		fmt.Println("Password: Not saved (asked on fetch)")
	} else {
		fmt.Println("Password: ********")
	}
	fmt.Printf("Meeting List: %s\n", path)
	if cfg.FavouritePath != "" {
		fmt.Printf("File picker folder: %s\n", cfg.FavouritePath)
	}
	fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
	fmt.Println()
}

func runSetLoginTUI(cfg *config.AppConfig) error {
	username := cfg.Username
	var password string
	savePassword := false

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("ITSC account name").
				Value(&username).
				Validate(notEmpty("account name")),
			huh.NewConfirm().
				Title("Save your password too?").
				Description("It is stored in plain text in ~/.zoomctl.json. Otherwise you are asked on every fetch.").
				Value(&savePassword),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password).
				Validate(notEmpty("password")),
		).WithHideFunc(func() bool { return !savePassword }),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Username = strings.TrimSpace(username)
	if savePassword {
		cfg.Password = password
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Login saved for %s\n", cfg.Username)))
	return nil
}

func runSetPathTUI(cfg *config.AppConfig, title, description string, target *string) error {
	input := *target

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Description(description + "\nLeave empty to use the default location.").
				Placeholder("~/zoom_ids.json").
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	*target = strings.TrimSpace(input)
	if err := config.Save(cfg); err != nil {
		return err
	}

	if *target == "" {
		fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ %s reset to the default.\n", title)))
	} else {
		fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ %s set to %s\n", title, *target)))
	}
	return nil
}

// accentPresets are offered before the custom hex input.
var accentPresets = []struct {
	name  string
	color string
}{
	{"Zoom Blue", "33"},
	{"Campus Navy", "#003366"},
	{"Campus Gold", "#A59265"},
	{"Meeting Green", "42"},
	{"Alert Orange", "208"},
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	choice := cfg.AccentColor
	custom := cfg.AccentColor

	options := make([]huh.Option[string], 0, len(accentPresets)+1)
	for _, p := range accentPresets {
		options = append(options, huh.NewOption(colorBlock(p.color)+" "+p.name, p.color))
	}
	options = append(options, huh.NewOption("Custom hex code", "custom"))

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Accent colour").
				Description("Used for titles, borders and the result table header.").
				Options(options...).
				Value(&choice),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Hex colour").
				Description("Six hex digits after #, e.g. #2D8CFF").
				Placeholder("#").
				Value(&custom).
				Validate(validHex),
		).WithHideFunc(func() bool { return choice != "custom" }),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.AccentColor = choice
	if choice == "custom" {
		cfg.AccentColor = custom
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(Accent(fmt.Sprintf("\nAccent colour set to %s %s\n", colorBlock(cfg.AccentColor), cfg.AccentColor)))
	return nil
}

func validHex(str string) error {
	if len(str) != 7 || !strings.HasPrefix(str, "#") {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	for _, r := range str[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return fmt.Errorf("%q is not a hex digit", r)
		}
	}
	return nil
}
