package layers

import (
	"sort"

	"github.com/TACC/hazmapper-qgis-plugin/internal/geoapi"
)

// LayerFeature is one feature ready for a vector layer: WKT geometry
// plus the two attributes the plugin exposes.
type LayerFeature struct {
	WKT         string `json:"wkt"`
	AssetType   string `json:"assetType"`
	DisplayPath string `json:"displayPath"`
}

// FeatureLayer groups the features of one asset type.
type FeatureLayer struct {
	Name      string         `json:"name"`
	AssetType string         `json:"assetType"`
	Features  []LayerFeature `json:"features"`
}

// BuildFeatureLayers groups GeoJSON features by their first asset's
// type. Features without assets or with unconvertible geometry are
// skipped. Layers come back ordered by display name; the returned
// bounds cover every accepted feature for zoom-to-extent.
func BuildFeatureLayers(fc *geoapi.FeatureCollection) ([]FeatureLayer, Bounds) {
	var bounds Bounds
	groups := map[string][]LayerFeature{}

	for _, feat := range fc.Features {
		if len(feat.Assets) == 0 {
			continue
		}
		asset := feat.Assets[0]

		wkt, err := JSONToWKT(feat.Geometry)
		if err != nil {
			// Bad geometry: skip the feature, keep loading the rest.
			continue
		}
		bounds.Extend(feat.Geometry)

		groups[asset.AssetType] = append(groups[asset.AssetType], LayerFeature{
			WKT:         wkt,
			AssetType:   asset.AssetType,
			DisplayPath: asset.DisplayPath,
		})
	}

	out := make([]FeatureLayer, 0, len(groups))
	for assetType, feats := range groups {
		out = append(out, FeatureLayer{
			Name:      DisplayName(assetType),
			AssetType: assetType,
			Features:  feats,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, bounds
}
