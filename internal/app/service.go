package app

import (
	"context"
	"fmt"

	"github.com/TACC/hazmapper-qgis-plugin/internal/catalog"
	"github.com/TACC/hazmapper-qgis-plugin/internal/emit"
	"github.com/TACC/hazmapper-qgis-plugin/internal/geoapi"
	"github.com/TACC/hazmapper-qgis-plugin/internal/layers"
	"github.com/TACC/hazmapper-qgis-plugin/internal/published"
)

// DefaultConfigPath is where the discovery tool drops the JSON
// artifact the browser consumes.
const DefaultConfigPath = "projects_with_hazmapper_maps.json"

// Service backs both the desktop bindings and the terminal browser:
// the published-map configuration plus the GeoAPI client.
type Service struct {
	GeoAPI    *geoapi.Client
	Catalog   catalog.DiscoveryResult
	Published []published.Map
}

// NewService loads the static configuration and wires the GeoAPI
// client. An absent configuration yields an empty browser, not an
// error.
func NewService(configPath string) (*Service, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	result, err := published.LoadResult(configPath)
	if err != nil {
		return nil, err
	}
	return &Service{
		GeoAPI:    geoapi.NewClient(""),
		Catalog:   result,
		Published: published.Flatten(result),
	}, nil
}

// ProjectBundle is everything the host needs to render one loaded
// project.
type ProjectBundle struct {
	Project  geoapi.Project        `json:"project"`
	Basemaps []layers.Basemap      `json:"basemaps"`
	Layers   []layers.FeatureLayer `json:"layers"`
	Extent   *layers.Bounds        `json:"extent,omitempty"`
}

// LoadProject resolves a public viewer URL and performs the three-step
// GeoAPI fetch, returning host-neutral layer descriptors.
func (s *Service) LoadProject(ctx context.Context, url string) (*ProjectBundle, error) {
	uuid, err := published.UUIDFromURL(url)
	if err != nil {
		return nil, err
	}

	project, err := s.GeoAPI.ProjectByUUID(ctx, uuid)
	if err != nil {
		return nil, fmt.Errorf("load project %s: %w", uuid, err)
	}

	servers, err := s.GeoAPI.TileServers(ctx, project.ID)
	if err != nil {
		return nil, fmt.Errorf("load basemaps for %s: %w", uuid, err)
	}

	fc, err := s.GeoAPI.Features(ctx, project.ID, nil)
	if err != nil {
		return nil, fmt.Errorf("load features for %s: %w", uuid, err)
	}

	featureLayers, bounds := layers.BuildFeatureLayers(fc)
	bundle := &ProjectBundle{
		Project:  *project,
		Basemaps: layers.BuildBasemaps(servers),
		Layers:   featureLayers,
	}
	if bounds.Valid() {
		bundle.Extent = &bounds
	}
	return bundle, nil
}

// GenerateCatalogReport writes the Word report of the loaded
// published-map configuration.
func (s *Service) GenerateCatalogReport(path string) error {
	return emit.DocxReport(s.Catalog, path)
}
