package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig(t *testing.T) {
	t.Run("DefaultConfig carries embedded defaults", func(t *testing.T) {
		config := DefaultConfig()

		if config.Backend.BaseURL != "http://localhost:8000" {
			t.Errorf("unexpected base URL %q", config.Backend.BaseURL)
		}
		if config.Defaults.Limit != 15 {
			t.Errorf("unexpected default limit %d", config.Defaults.Limit)
		}
		if config.Defaults.Energy != 0.5 {
			t.Errorf("unexpected default energy %v", config.Defaults.Energy)
		}
		if config.Defaults.Public {
			t.Error("expected private by default")
		}
		if config.Database.Path != "vibelist.db" {
			t.Errorf("unexpected database path %q", config.Database.Path)
		}
		if config.Server.Host != "localhost" || config.Server.Port != 3000 {
			t.Errorf("unexpected server address %s:%d", config.Server.Host, config.Server.Port)
		}
	})

	t.Run("LoadConfig parses a TOML file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		content := `
[backend]
base_url = "http://example.com:9000"
username = "dana"

[defaults]
limit = 30
energy = 0.8
public = true
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if config.Backend.BaseURL != "http://example.com:9000" {
			t.Errorf("unexpected base URL %q", config.Backend.BaseURL)
		}
		if config.Backend.Username != "dana" {
			t.Errorf("unexpected username %q", config.Backend.Username)
		}
		if config.Defaults.Limit != 30 || config.Defaults.Energy != 0.8 || !config.Defaults.Public {
			t.Errorf("unexpected defaults %+v", config.Defaults)
		}
	})

	t.Run("LoadConfig fails for missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("LoadConfig fails for invalid TOML", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("not [valid toml"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, err := LoadConfig(path); err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("SaveConfig round-trips", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		config := DefaultConfig()
		config.Backend.Username = "dana"
		config.Defaults.Limit = 25

		if err := SaveConfig(path, config); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		loaded, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if loaded.Backend.Username != "dana" || loaded.Defaults.Limit != 25 {
			t.Errorf("round trip lost values: %+v", loaded)
		}
	})

	t.Run("CreateConfigFile writes the template once", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")

		if err := CreateConfigFile(path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if config.Backend.BaseURL != "http://localhost:8000" {
			t.Errorf("unexpected base URL %q", config.Backend.BaseURL)
		}

		if err := CreateConfigFile(path); err == nil {
			t.Error("expected error when file already exists")
		}
	})
}
