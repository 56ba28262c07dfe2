package geoapi

import "encoding/json"

// Project is the GeoAPI project metadata returned by the uuid lookup.
type Project struct {
	ID          int    `json:"id"`
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SystemName  string `json:"system_name"`
}

// TileServer describes one basemap layer definition.
type TileServer struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	URL         string         `json:"url"`
	Type        string         `json:"type"`
	TileOptions map[string]any `json:"tileOptions"`
	UIOptions   UIOptions      `json:"uiOptions"`
}

// UIOptions carries the viewer hints the layer builder honors.
// Opacity is a pointer so an absent value can default to fully opaque.
type UIOptions struct {
	ZIndex  int      `json:"zIndex"`
	Opacity *float64 `json:"opacity"`
	Visible *bool    `json:"isActive"`
}

// FeatureCollection is the GeoJSON document of project features.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is one GeoJSON feature plus the Hazmapper asset annotations.
// Geometry stays raw; the layers package converts it to WKT.
type Feature struct {
	ID         json.Number     `json:"id"`
	Geometry   json.RawMessage `json:"geometry"`
	Properties map[string]any  `json:"properties"`
	Assets     []Asset         `json:"assets"`
}

// Asset annotates a feature with its media type and storage path.
type Asset struct {
	ID          int    `json:"id"`
	AssetType   string `json:"asset_type"`
	DisplayPath string `json:"display_path"`
	Path        string `json:"path"`
}
