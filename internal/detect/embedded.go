package detect

import (
	"context"

	"github.com/TACC/hazmapper-qgis-plugin/internal/catalog"
)

// EmbeddedDetector inspects only fields already present on the listing
// record. It never issues a network call, so it cannot fail; projects
// whose listing omits baseProject are reported as map-less.
type EmbeddedDetector struct{}

func (d *EmbeddedDetector) HasMaps(ctx context.Context, project catalog.ProjectRecord) ([]catalog.MapReference, error) {
	_ = ctx
	return mapsFromValue(project.ProjectID, project.BaseProject), nil
}
