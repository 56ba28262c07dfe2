// Package config loads the optional YAML configuration of the
// discovery tool. Flags override file values; the zero config crawls
// the production catalog with the defaults of the original generator.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration decodes YAML values like "150ms" or "2s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// Config drives one discovery run.
type Config struct {
	// BaseURL is the DesignSafe API root.
	BaseURL string `yaml:"base_url"`
	// FeedURL, when set, switches the listing source to the catalog's
	// RSS/Atom feed instead of the paginated REST endpoint.
	FeedURL string `yaml:"feed_url"`
	// Detector selects the map-detection strategy:
	// embedded, lookup or hybrid.
	Detector string `yaml:"detector"`
	// PageSize is the listing page length.
	PageSize int `yaml:"page_size"`
	// ShortLimit caps total fetched records when Short is set.
	ShortLimit int `yaml:"short_limit"`
	// Short enables the capped testing mode.
	Short bool `yaml:"short"`
	// Delay is the politeness pause between consecutive API calls.
	Delay Duration `yaml:"delay"`

	// Output paths. Empty DocxPath skips the Word report.
	PythonPath   string `yaml:"python_output"`
	MarkdownPath string `yaml:"markdown_output"`
	JSONPath     string `yaml:"json_output"`
	DocxPath     string `yaml:"docx_report"`
}

// Default returns the configuration matching the original generator:
// full crawl, hybrid detection, 100-record pages, 150ms pause.
func Default() Config {
	return Config{
		Detector:     "hybrid",
		PageSize:     100,
		ShortLimit:   100,
		Delay:        Duration(150 * time.Millisecond),
		PythonPath:   "maps_of_published_projects.py",
		MarkdownPath: "published_hazmapper_maps.md",
		JSONPath:     "projects_with_hazmapper_maps.json",
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults untouched.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.PageSize <= 0 {
		return cfg, fmt.Errorf("config %s: page_size must be positive", path)
	}
	if cfg.ShortLimit <= 0 {
		return cfg, fmt.Errorf("config %s: short_limit must be positive", path)
	}
	return cfg, nil
}
