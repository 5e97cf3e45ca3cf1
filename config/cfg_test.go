package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Tags.Path != "nametag-tags.yaml" {
		t.Errorf("Tags.Path = %q", cfg.Tags.Path)
	}
	if cfg.Nameplates.TitleVisibility != NameplateTitleVisibilityDefault {
		t.Errorf("TitleVisibility = %s, want default", cfg.Nameplates.TitleVisibility)
	}
	if cfg.Development.RandomizeNames {
		t.Error("RandomizeNames is on by default")
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	dir := t.TempDir()
	configPath := writeConfig(t, `version: 1
tags:
  path: `+filepath.Join(dir, "store", "tags.yaml")+`
nameplates:
  free_company_visibility: never
  title_visibility: when-has-tags
  title_position: always-below-name
development:
  randomize_names: true
logging:
  console:
    level: debug
  file:
    level: normal
    destination: `+filepath.Join(dir, "test.log")+`
    mode: append
reporting:
  destination: `+filepath.Join(dir, "report.zip")+`
`)

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if cfg.Nameplates.FreeCompanyVisibility != NameplateFreeCompanyVisibilityNever {
		t.Errorf("FreeCompanyVisibility = %s", cfg.Nameplates.FreeCompanyVisibility)
	}
	if cfg.Nameplates.TitleVisibility != NameplateTitleVisibilityWhenHasTags {
		t.Errorf("TitleVisibility = %s", cfg.Nameplates.TitleVisibility)
	}
	if cfg.Nameplates.TitlePosition != NameplateTitlePositionAlwaysBelowName {
		t.Errorf("TitlePosition = %s", cfg.Nameplates.TitlePosition)
	}
	if !cfg.Development.RandomizeNames {
		t.Error("Expected RandomizeNames to be true")
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("FileLogger.Mode = %q", cfg.Logging.FileLogger.Mode)
	}
	if _, err := os.Stat(filepath.Join(dir, "store")); err != nil {
		t.Errorf("tag store directory was not created: %v", err)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\ntags:\n  path: a\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"invalid version", "version: 2\n"},
		{"invalid enum", "version: 1\nnameplates:\n  title_visibility: sometimes\n"},
		{"invalid log level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_StoreSharesLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shared.log")
	_, err := LoadConfiguration(writeConfig(t, `version: 1
tags:
  path: `+path+`
logging:
  file:
    level: debug
    destination: `+path+`
`))
	if err == nil {
		t.Fatal("Expected error for tag store sharing file with log")
	}
	if !strings.Contains(err.Error(), "differs_from_log") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	cfg := &Config{}
	if _, err := unmarshalConfig(data, cfg, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg := &Config{
		Version: 1,
		Tags:    TagsConfig{Path: "tags.yaml"},
		Nameplates: NameplatesConfig{
			TitlePosition: NameplateTitlePositionAlwaysAboveName,
		},
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "title_position: always-above-name") {
		t.Errorf("Dump() = %s", data)
	}

	cfg2 := &Config{}
	if _, err := unmarshalConfig(data, cfg2, false); err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Nameplates.TitlePosition != cfg.Nameplates.TitlePosition {
		t.Errorf("TitlePosition mismatch after dump/load: got %s", cfg2.Nameplates.TitlePosition)
	}
}

func TestUnmarshalConfig(t *testing.T) {
	t.Run("valid config without processing", func(t *testing.T) {
		result, err := unmarshalConfig([]byte(`version: 1`), &Config{}, false)
		if err != nil {
			t.Fatalf("unmarshalConfig() error = %v", err)
		}
		if result.Version != 1 {
			t.Errorf("Version = %d, want 1", result.Version)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		if _, err := unmarshalConfig([]byte(`invalid: [yaml`), &Config{}, false); err == nil {
			t.Error("Expected error for invalid YAML")
		}
	})
}
