package emit

import (
	"fmt"

	"github.com/gingfrederik/docx"

	"github.com/TACC/hazmapper-qgis-plugin/internal/catalog"
)

// DocxReport writes a Word document summarizing the discovery run, for
// sharing outside the plugin toolchain.
func DocxReport(result catalog.DiscoveryResult, path string) error {
	f := docx.NewFile()

	titleP := f.AddParagraph()
	titleRun := titleP.AddText("Published Hazmapper Maps Report")
	titleRun.Size(20)

	p := f.AddParagraph()
	p.AddText(fmt.Sprintf("%d project(s) with %d Hazmapper map(s) discovered on DesignSafe.",
		len(result.Projects), result.MapCount()))
	f.AddParagraph() // Spacer

	for _, proj := range result.Projects {
		p = f.AddParagraph()
		run := p.AddText(fmt.Sprintf("%s - %s", proj.Project.ProjectID, proj.Project.Title))
		run.Size(14)

		for _, m := range proj.Maps {
			p = f.AddParagraph()
			name := m.Name
			if name == "" {
				name = m.UUID
			}
			run = p.AddText(fmt.Sprintf("Map: %s", name))
			run.Size(10)

			p = f.AddParagraph()
			run = p.AddText(m.URL)
			run.Size(10)
			run.Color("0000FF")
		}
		f.AddParagraph().AddText("--------------------------------------------------")
	}

	return f.Save(path)
}
