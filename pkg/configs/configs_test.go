package configs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	cfg, err := LoadConfig(NewViper(), "")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.App.Name != "vivid" {
		t.Errorf("App.Name = %q", cfg.App.Name)
	}
	if cfg.Theme.OutputDir != "themes" || cfg.Theme.Format != "json" {
		t.Errorf("Theme = %+v", cfg.Theme)
	}
	if cfg.Theme.Variant() != "dark" {
		t.Errorf("Variant() = %q", cfg.Theme.Variant())
	}
	if cfg.App.Hotload.Debounce != 300 {
		t.Errorf("Hotload.Debounce = %d", cfg.App.Hotload.Debounce)
	}
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", dir)
	content := "theme:\n  output_dir: dist\n  format: yaml\n  default_variant: light\nlog:\n  level: debug\n"
	if err := os.WriteFile(filepath.Join(dir, ".vivid.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VIVID_THEME_STRICT", "true")

	cfg, err := LoadConfig(NewViper(), "")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Theme.OutputDir != "dist" || cfg.Theme.OutputFormat() != "yaml" || cfg.Theme.Variant() != "light" {
		t.Errorf("Theme = %+v", cfg.Theme)
	}
	if !cfg.Theme.Strict {
		t.Error("VIVID_THEME_STRICT not applied")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	content := "[theme]\nformat = \"xml\"\ndefault_variant = \"sepia\"\nmin_contrast = 30.0\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadConfig(NewViper(), path)
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"theme.format", "theme.default_variant", "theme.min_contrast"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestCreateDefaultConfig(t *testing.T) {
	for _, format := range []OutputFormat{FormatYAML, FormatJSON, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", DefaultConfigPath(format))
			if err := CreateDefaultConfig(path, format); err != nil {
				t.Fatalf("CreateDefaultConfig() error = %v", err)
			}
			cfg, err := LoadConfig(NewViper(), path)
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if cfg.Theme.OutputDir != "themes" {
				t.Errorf("Theme.OutputDir = %q", cfg.Theme.OutputDir)
			}
			if err := CreateDefaultConfig(path, format); err == nil {
				t.Error("expected error when file exists")
			}
		})
	}
	if err := CreateDefaultConfig("", FormatText); err == nil {
		t.Error("expected error for text format")
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := map[string]OutputFormat{"yml": FormatYAML, "JSON": FormatJSON, "toml": FormatTOML, "txt": FormatText, "table": FormatTable}
	for in, want := range tests {
		got, err := ParseOutputFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseOutputFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseOutputFormat("xml"); err == nil {
		t.Error("expected error for xml")
	}
}

func TestOutputDataPlain(t *testing.T) {
	data := map[string]any{"name": "Vivid Dark", "type": "dark"}
	var buf bytes.Buffer
	if err := OutputData(data, FormatJSON, &buf, false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"name": "Vivid Dark"`) {
		t.Errorf("unexpected JSON output:\n%s", buf.String())
	}
	buf.Reset()
	if err := OutputData(data, FormatYAML, &buf, false); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "type: dark") {
		t.Errorf("unexpected YAML output:\n%s", buf.String())
	}
}
