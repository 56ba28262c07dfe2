package emit

import (
	"github.com/TACC/hazmapper-qgis-plugin/internal/catalog"
	"github.com/TACC/hazmapper-qgis-plugin/internal/format"
)

// Summary renders the terminal table shown after a crawl: one row per
// project with its detected map count.
func Summary(result catalog.DiscoveryResult) string {
	t := format.NewTable(format.ASCII)
	t.Header("Project", "Title", "Maps")
	t.LeftAlign(1, 2)
	for _, p := range result.Projects {
		t.Row(p.Project.ProjectID, p.Project.Title, len(p.Maps))
	}
	return t.String()
}
