package emit

import (
	"fmt"
	"strings"

	"github.com/TACC/hazmapper-qgis-plugin/internal/catalog"
	"github.com/TACC/hazmapper-qgis-plugin/internal/format"
)

// MarkdownIndex renders the human-readable index: one table row per
// (project, map) pair with titles and viewer hyperlinks.
func MarkdownIndex(result catalog.DiscoveryResult) []byte {
	var b strings.Builder
	b.WriteString("# Published DesignSafe projects with Hazmapper maps\n\n")
	fmt.Fprintf(&b, "Generated from the DesignSafe publications catalog: %d project(s), %d map(s).\n\n",
		len(result.Projects), result.MapCount())

	t := format.NewTable(format.Markdown)
	t.Header("Project", "Title", "Map", "Viewer")
	for _, p := range result.Projects {
		for _, m := range p.Maps {
			name := m.Name
			if name == "" {
				name = m.UUID
			}
			t.Row(p.Project.ProjectID, p.Project.Title, name,
				fmt.Sprintf("[open](%s)", m.URL))
		}
	}
	b.WriteString(t.String())
	b.WriteString("\n")
	return []byte(b.String())
}
