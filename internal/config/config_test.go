package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.PageSize != 100 {
		t.Errorf("page size: %d", cfg.PageSize)
	}
	if cfg.Detector != "hybrid" {
		t.Errorf("detector: %q", cfg.Detector)
	}
	if cfg.Delay != Duration(150*time.Millisecond) {
		t.Errorf("delay: %v", cfg.Delay)
	}
	if cfg.JSONPath != "projects_with_hazmapper_maps.json" {
		t.Errorf("json path: %q", cfg.JSONPath)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "discovery.yaml")
	content := `
base_url: https://staging.designsafe-ci.org
detector: lookup
page_size: 25
delay: 10ms
python_output: out/maps.py
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "https://staging.designsafe-ci.org" {
		t.Errorf("base url: %q", cfg.BaseURL)
	}
	if cfg.Detector != "lookup" || cfg.PageSize != 25 {
		t.Errorf("cfg: %+v", cfg)
	}
	if cfg.Delay != Duration(10*time.Millisecond) {
		t.Errorf("delay: %v", cfg.Delay)
	}
	if cfg.PythonPath != "out/maps.py" {
		t.Errorf("python path: %q", cfg.PythonPath)
	}
	// Untouched keys keep their defaults.
	if cfg.MarkdownPath != "published_hazmapper_maps.md" {
		t.Errorf("markdown path: %q", cfg.MarkdownPath)
	}
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg: %+v", cfg)
	}
}

func TestLoad_BadPageSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "discovery.yaml")
	if err := os.WriteFile(path, []byte("page_size: -5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("negative page_size: want error")
	}
}

func TestLoad_BadShortLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "discovery.yaml")
	if err := os.WriteFile(path, []byte("short_limit: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("zero short_limit: want error")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing config file: want error")
	}
}
