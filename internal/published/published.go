// Package published loads the static configuration emitted by the
// discovery tool for the bridge side. The bridge never talks to the
// catalog at runtime; the file handoff is the only coupling.
package published

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/TACC/hazmapper-qgis-plugin/internal/catalog"
)

// Map is one predefined published map entry offered in the project
// browser.
type Map struct {
	URL         string `json:"url"`
	ProjectID   string `json:"designSafeProjectId"`
	ProjectName string `json:"designSafeProjectName"`
}

// LoadResult reads the JSON artifact of a discovery run. A missing
// file is not an error: the browser then only accepts manual URLs.
func LoadResult(path string) (catalog.DiscoveryResult, error) {
	var result catalog.DiscoveryResult

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return result, nil
		}
		return result, fmt.Errorf("read published maps: %w", err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("parse published maps %s: %w", path, err)
	}
	return result, nil
}

// Flatten turns a discovery result into browser entries, preserving
// crawl order.
func Flatten(result catalog.DiscoveryResult) []Map {
	var maps []Map
	for _, p := range result.Projects {
		for _, m := range p.Maps {
			maps = append(maps, Map{
				URL:         m.URL,
				ProjectID:   p.Project.ProjectID,
				ProjectName: p.Project.Title,
			})
		}
	}
	return maps
}

const publicMarker = "/project-public/"

// IsValidURL reports whether url is a loadable public viewer link.
func IsValidURL(url string) bool {
	return strings.Contains(url, publicMarker)
}

// UUIDFromURL extracts the map uuid: the path segment right after
// /project-public/.
func UUIDFromURL(url string) (string, error) {
	idx := strings.Index(url, publicMarker)
	if idx < 0 {
		return "", fmt.Errorf("not a public Hazmapper URL: %s", url)
	}
	rest := url[idx+len(publicMarker):]
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		rest = rest[:i]
	}
	if rest == "" {
		return "", fmt.Errorf("no uuid in URL: %s", url)
	}
	return rest, nil
}
