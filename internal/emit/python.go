package emit

import (
	"fmt"
	"strings"

	"github.com/TACC/hazmapper-qgis-plugin/internal/catalog"
)

// PythonModule renders the Python-literal configuration module the
// QGIS plugin imports. The output is data, never executed as logic:
// a single `predefined_published_maps` list binding.
func PythonModule(result catalog.DiscoveryResult) []byte {
	var b strings.Builder
	b.WriteString(`"""
Configuration file for predefined published Hazmapper projects
"""

# Generated automatically from DesignSafe API
predefined_published_maps = [
`)

	for _, p := range result.Projects {
		for _, m := range p.Maps {
			fmt.Fprintf(&b, `    {
        "url": "%s",  # noqa: E501
        "designSafeProjectId": "%s",
        "designSafeProjectName": "%s",
    },
`, pyEscape(m.URL), pyEscape(p.Project.ProjectID), pyEscape(p.Project.Title))
		}
	}

	b.WriteString("]\n")
	return []byte(b.String())
}

func pyEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}
