// Package emit writes the discovery artifacts. All artifacts of one
// run reflect exactly the same DiscoveryResult; a rerun regenerates
// them deterministically, so partial writes are not rolled back.
package emit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/TACC/hazmapper-qgis-plugin/internal/catalog"
)

// Destinations names the output files of one run. DocxPath is
// optional; the other three are always written together.
type Destinations struct {
	PythonPath   string
	MarkdownPath string
	JSONPath     string
	DocxPath     string
}

// DefaultDestinations places the artifacts in dir under their
// conventional names.
func DefaultDestinations(dir string) Destinations {
	return Destinations{
		PythonPath:   filepath.Join(dir, "maps_of_published_projects.py"),
		MarkdownPath: filepath.Join(dir, "published_hazmapper_maps.md"),
		JSONPath:     filepath.Join(dir, "projects_with_hazmapper_maps.json"),
	}
}

// Emit writes every configured artifact for the result. Invoked once
// per run, after the crawl has fully completed.
func Emit(result catalog.DiscoveryResult, dest Destinations) error {
	if err := writeFile(dest.PythonPath, PythonModule(result)); err != nil {
		return err
	}
	if err := writeFile(dest.MarkdownPath, MarkdownIndex(result)); err != nil {
		return err
	}
	data, err := JSONDump(result)
	if err != nil {
		return err
	}
	if err := writeFile(dest.JSONPath, data); err != nil {
		return err
	}
	if dest.DocxPath != "" {
		if err := DocxReport(result, dest.DocxPath); err != nil {
			return fmt.Errorf("write %s: %w", dest.DocxPath, err)
		}
	}
	return nil
}

func writeFile(path string, content []byte) error {
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
