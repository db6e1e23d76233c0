package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestConfigLoadSave(t *testing.T) {
	// Create a temporary directory to act as the user's home directory
	tempDir, err := os.MkdirTemp("", "zoomctl-config-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir) // cleanup

	// Override the home directory environment variable for testing
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir) // For Windows compatibility in tests
	t.Setenv(EnvUsername, "")
	t.Setenv(EnvPassword, "")
	t.Setenv(EnvPath, "")

	// 1. Test Load with no existing file
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error when loading missing config, got: %v", err)
	}
	if cfg == nil {
		t.Fatalf("expected empty config to be returned, got nil")
	}

	// 2. Modify and Save the config
	cfg.Username = "student"
	cfg.Password = "hunter2"
	cfg.DefaultPath = filepath.Join(tempDir, "zoom_ids.json")
	cfg.FavouritePath = filepath.Join(tempDir, "favourites.json")
	cfg.AccentColor = "42"

	err = Save(cfg)
	if err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	// Verify the file was actually created
	configPath := filepath.Join(tempDir, ".zoomctl.json")
	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		t.Fatalf("expected config file to be created at %s", configPath)
	}
	if perm := info.Mode().Perm(); perm&0077 != 0 {
		t.Errorf("expected config file to be private, got mode %v", perm)
	}

	// 3. Test Load with existing file
	loadedCfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load existing config: %v", err)
	}

	// Compare loaded config with saved config
	if !reflect.DeepEqual(cfg, loadedCfg) {
		t.Errorf("loaded config does not match saved config.\nGot: %+v\nExpected: %+v", loadedCfg, cfg)
	}
}

func TestConfigParseError(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "zoomctl-config-err-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	// Write invalid JSON to the config file
	configPath := filepath.Join(tempDir, ".zoomctl.json")
	err = os.WriteFile(configPath, []byte("invalid json { content"), 0644)
	if err != nil {
		t.Fatalf("failed to write invalid json: %v", err)
	}

	// Attempt to load the invalid JSON
	_, err = Load()
	if err == nil {
		t.Errorf("expected error when loading invalid json, got nil")
	}
}

func TestConfigEnvOverrides(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)
	t.Setenv(EnvPath, "")

	if err := Save(&AppConfig{Username: "saved-user", Password: "saved-pass", AccentColor: "99"}); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	t.Setenv(EnvUsername, "env-user")
	t.Setenv(EnvPassword, "env-pass")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Username != "env-user" || cfg.Password != "env-pass" {
		t.Errorf("expected environment credentials, got %s/%s", cfg.Username, cfg.Password)
	}

	cfg.AccentColor = "42"
	if err := Save(cfg); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(tempDir, ".zoomctl.json"))
	if err != nil {
		t.Fatalf("failed to read config: %v", err)
	}
	content := string(data)
	if strings.Contains(content, "env-user") || strings.Contains(content, "env-pass") {
		t.Errorf("expected environment values not to be written, got: %s", content)
	}
	if !strings.Contains(content, "saved-user") || !strings.Contains(content, `"42"`) {
		t.Errorf("expected saved values and the new accent colour, got: %s", content)
	}
}

func TestDirectoryPath(t *testing.T) {
	if got, _ := DirectoryPath(&AppConfig{DefaultPath: "/cfg.json"}, "/explicit.json"); got != "/explicit.json" {
		t.Errorf("expected explicit path to win, got %s", got)
	}
	if got, _ := DirectoryPath(&AppConfig{DefaultPath: "/cfg.json"}, ""); got != "/cfg.json" {
		t.Errorf("expected configured path, got %s", got)
	}

	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	got, err := DirectoryPath(&AppConfig{}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(got) != "zoom_ids.json" || filepath.Base(filepath.Dir(got)) != "zoomctl" {
		t.Errorf("unexpected default path %s", got)
	}
}
