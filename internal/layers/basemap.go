// Package layers turns GeoAPI responses into host-neutral layer
// descriptors: sorted basemaps with normalized XYZ tile URIs, and
// feature layers grouped by asset type with WKT geometry. Rendering
// them on a canvas belongs to the host.
package layers

import (
	"sort"
	"strings"

	"github.com/TACC/hazmapper-qgis-plugin/internal/geoapi"
)

// Basemap is one renderable tile layer.
type Basemap struct {
	Name    string  `json:"name"`
	Type    string  `json:"type"`
	TileURL string  `json:"tileUrl"`
	URI     string  `json:"uri"`
	Opacity float64 `json:"opacity"`
	ZIndex  int     `json:"zIndex"`
}

// BuildBasemaps converts tile-server definitions to basemaps, lowest
// zIndex first. Unsupported layer types are dropped.
func BuildBasemaps(servers []geoapi.TileServer) []Basemap {
	sorted := make([]geoapi.TileServer, len(servers))
	copy(sorted, servers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UIOptions.ZIndex < sorted[j].UIOptions.ZIndex
	})

	out := make([]Basemap, 0, len(sorted))
	for _, s := range sorted {
		url := s.URL
		// Subdomain placeholder: pick 'a'.
		url = strings.ReplaceAll(url, "{s}", "a")

		if !supportsXYZ(s.Type, url) {
			continue
		}
		tileURL := normalizeTileURL(url)

		opacity := 1.0
		if s.UIOptions.Opacity != nil {
			opacity = *s.UIOptions.Opacity
		}

		out = append(out, Basemap{
			Name:    s.Name,
			Type:    s.Type,
			TileURL: tileURL,
			URI:     "type=xyz&url=" + tileURL + "&zmin=0&zmax=22",
			Opacity: opacity,
			ZIndex:  s.UIOptions.ZIndex,
		})
	}
	return out
}

func supportsXYZ(layerType, url string) bool {
	if layerType == "tms" {
		return true
	}
	return layerType == "arcgis" && strings.Contains(url, "/tiles/")
}

// normalizeTileURL ensures the URL carries an XYZ tile path template.
func normalizeTileURL(url string) string {
	if strings.HasSuffix(url, "/tile/{z}/{y}/{x}") || strings.Contains(url, "{z}/{x}/{y}") {
		return url
	}
	return strings.TrimRight(url, "/") + "/tile/{z}/{y}/{x}"
}
