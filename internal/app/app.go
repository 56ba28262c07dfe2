package app

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/TACC/hazmapper-qgis-plugin/internal/published"
)

// Run is the terminal project browser: pick a published map (or paste
// a public viewer URL), fetch it, print what would land on the canvas.
func Run() error {
	svc, err := NewService("")
	if err != nil {
		return err
	}

	in := bufio.NewReader(os.Stdin)
	ctx := context.Background()

	fmt.Println("Hazmapper published-map browser")
	if len(svc.Published) == 0 {
		fmt.Println("No published-map configuration found; paste a public Hazmapper URL.")
	}

	for {
		printPublished(svc.Published)
		fmt.Println("Enter a number, a public Hazmapper URL, or q to quit.")
		fmt.Print("> ")

		line, err := in.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)

		switch {
		case line == "":
			continue
		case line == "q" || line == "quit":
			return nil
		}

		url, ok := resolveSelection(svc.Published, line)
		if !ok {
			fmt.Println("Not a valid selection or public Hazmapper URL. Try again.")
			continue
		}

		fmt.Println("Loading project...")
		bundle, err := svc.LoadProject(ctx, url)
		if err != nil {
			fmt.Printf("Load failed: %v\n\n", err)
			continue
		}
		printBundle(bundle)

		fmt.Print("Save Word report of the catalog? [y/N] ")
		answer, err := in.ReadString('\n')
		if err != nil {
			return err
		}
		if strings.EqualFold(strings.TrimSpace(answer), "y") {
			path := "published_hazmapper_maps.docx"
			if err := svc.GenerateCatalogReport(path); err != nil {
				fmt.Printf("Report failed: %v\n", err)
			} else {
				fmt.Printf("Report written to %s\n", path)
			}
		}
		fmt.Println()
	}
}

func resolveSelection(maps []published.Map, line string) (string, bool) {
	if n, err := strconv.Atoi(line); err == nil {
		if n >= 1 && n <= len(maps) {
			return maps[n-1].URL, true
		}
		return "", false
	}
	if published.IsValidURL(line) {
		return line, true
	}
	return "", false
}

func printPublished(maps []published.Map) {
	if len(maps) == 0 {
		return
	}
	fmt.Println("\nPublished projects with Hazmapper maps:")
	for i, m := range maps {
		fmt.Printf("  %2d. %s (%s)\n", i+1, m.ProjectName, m.ProjectID)
	}
}

func printBundle(b *ProjectBundle) {
	fmt.Printf("\nLoaded: %s (uuid %s)\n", b.Project.Name, b.Project.UUID)
	fmt.Printf("Basemaps: %d\n", len(b.Basemaps))
	for _, bm := range b.Basemaps {
		fmt.Printf("  - %s (z=%d, opacity=%.2f)\n", bm.Name, bm.ZIndex, bm.Opacity)
	}
	fmt.Printf("Feature layers: %d\n", len(b.Layers))
	for _, l := range b.Layers {
		fmt.Printf("  - %s: %d feature(s)\n", l.Name, len(l.Features))
	}
	if b.Extent != nil {
		fmt.Printf("Extent: [%.5f, %.5f] - [%.5f, %.5f]\n",
			b.Extent.MinX, b.Extent.MinY, b.Extent.MaxX, b.Extent.MaxY)
	}
}
