package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Environment variables that take precedence over the saved settings.
const (
	EnvUsername = "ZOOMCTL_USERNAME"
	EnvPassword = "ZOOMCTL_PASSWORD"
	EnvPath     = "ZOOMCTL_PATH"
)

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	Username      string `json:"username,omitempty"`
	Password      string `json:"password,omitempty"`
	DefaultPath   string `json:"defaultPath,omitempty"`
	FavouritePath string `json:"favouritePath,omitempty"`
	AccentColor   string `json:"accentColor,omitempty"`

	// overrides remembers which fields came from the environment, so Save does not persist them
	overrides map[string]string
}

// getConfigPath returns the absolute path to ~/.zoomctl.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".zoomctl.json"), nil
}

// Load reads the application configuration from disk and applies environment overrides.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	var cfg AppConfig

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err == nil {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	cfg.applyEnv()
	return &cfg, nil
}

func (cfg *AppConfig) applyEnv() {
	fields := map[string]*string{
		EnvUsername: &cfg.Username,
		EnvPassword: &cfg.Password,
		EnvPath:     &cfg.DefaultPath,
	}
	for env, field := range fields {
		value, ok := os.LookupEnv(env)
		if !ok || value == "" {
			continue
		}
		if cfg.overrides == nil {
			cfg.overrides = make(map[string]string)
		}
		cfg.overrides[env] = *field
		*field = value
	}
}

// Save writes the application configuration back to disk.
// Values that were taken from the environment are saved as they were on disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	onDisk := *cfg
	onDisk.overrides = nil
	for env, original := range cfg.overrides {
		switch env {
		case EnvUsername:
			onDisk.Username = original
		case EnvPassword:
			onDisk.Password = original
		case EnvPath:
			onDisk.DefaultPath = original
		}
	}

	data, err := json.MarshalIndent(onDisk, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	// 0600: the file may hold a password
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DirectoryPath picks the directory file to use: an explicit path first, then
// the configured default, then zoom_ids.json in the user config directory.
func DirectoryPath(cfg *AppConfig, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if cfg != nil && cfg.DefaultPath != "" {
		return cfg.DefaultPath, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not find user config directory: %w", err)
	}
	return filepath.Join(dir, "zoomctl", "zoom_ids.json"), nil
}
