package detect

import (
	"context"

	"github.com/TACC/hazmapper-qgis-plugin/internal/catalog"
)

// HybridDetector tries the embedded fields first and falls back to the
// per-project lookup only when the listing record carries nothing.
// Either leg may be nil, which disables it.
type HybridDetector struct {
	Embedded Detector
	Lookup   Detector
}

func (d *HybridDetector) HasMaps(ctx context.Context, project catalog.ProjectRecord) ([]catalog.MapReference, error) {
	if d.Embedded != nil {
		maps, err := d.Embedded.HasMaps(ctx, project)
		if err == nil && len(maps) > 0 {
			return maps, nil
		}
	}
	if d.Lookup != nil {
		return d.Lookup.HasMaps(ctx, project)
	}
	return nil, nil
}
