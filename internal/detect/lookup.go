package detect

import (
	"context"

	"github.com/TACC/hazmapper-qgis-plugin/internal/catalog"
)

// LookupDetector fetches the full publication document per project and
// extracts hazmapperMaps from baseProject, or failing that from the
// first entity tree node that carries any.
type LookupDetector struct {
	Client *catalog.Client
}

func (d *LookupDetector) HasMaps(ctx context.Context, project catalog.ProjectRecord) ([]catalog.MapReference, error) {
	detail, err := d.Client.FetchDetail(ctx, project.ProjectID)
	if err != nil {
		return nil, err
	}

	if maps := mapsFromValue(project.ProjectID, detail.BaseProject); maps != nil {
		return maps, nil
	}
	if detail.Tree == nil {
		return nil, nil
	}
	for _, child := range detail.Tree.Children {
		if maps := mapsFromValue(project.ProjectID, child.Value); maps != nil {
			return maps, nil
		}
	}
	return nil, nil
}
