package layers

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// geoJSON is the wire shape of a GeoJSON geometry object.
type geoJSON struct {
	Type        string            `json:"type"`
	Coordinates json.RawMessage   `json:"coordinates"`
	Geometries  []json.RawMessage `json:"geometries"`
}

// JSONToWKT converts a GeoJSON geometry document to its WKT
// representation. Supports the seven standard geometry types.
func JSONToWKT(geometry []byte) (string, error) {
	var g geoJSON
	if err := json.Unmarshal(geometry, &g); err != nil {
		return "", fmt.Errorf("decode geometry: %w", err)
	}
	return wktFor(g)
}

func wktFor(g geoJSON) (string, error) {
	switch g.Type {
	case "Point":
		var c []float64
		if err := json.Unmarshal(g.Coordinates, &c); err != nil {
			return "", err
		}
		return "POINT (" + position(c) + ")", nil
	case "MultiPoint":
		var cs [][]float64
		if err := json.Unmarshal(g.Coordinates, &cs); err != nil {
			return "", err
		}
		return "MULTIPOINT (" + positionList(cs) + ")", nil
	case "LineString":
		var cs [][]float64
		if err := json.Unmarshal(g.Coordinates, &cs); err != nil {
			return "", err
		}
		return "LINESTRING (" + positionList(cs) + ")", nil
	case "MultiLineString":
		var css [][][]float64
		if err := json.Unmarshal(g.Coordinates, &css); err != nil {
			return "", err
		}
		return "MULTILINESTRING (" + ringList(css) + ")", nil
	case "Polygon":
		var css [][][]float64
		if err := json.Unmarshal(g.Coordinates, &css); err != nil {
			return "", err
		}
		return "POLYGON (" + ringList(css) + ")", nil
	case "MultiPolygon":
		var csss [][][][]float64
		if err := json.Unmarshal(g.Coordinates, &csss); err != nil {
			return "", err
		}
		parts := make([]string, len(csss))
		for i, css := range csss {
			parts[i] = "(" + ringList(css) + ")"
		}
		return "MULTIPOLYGON (" + strings.Join(parts, ", ") + ")", nil
	case "GeometryCollection":
		parts := make([]string, 0, len(g.Geometries))
		for _, raw := range g.Geometries {
			w, err := JSONToWKT(raw)
			if err != nil {
				return "", err
			}
			parts = append(parts, w)
		}
		return "GEOMETRYCOLLECTION (" + strings.Join(parts, ", ") + ")", nil
	case "":
		return "", errors.New("geometry has no type")
	default:
		return "", fmt.Errorf("unsupported geometry type %q", g.Type)
	}
}

func position(c []float64) string {
	parts := make([]string, len(c))
	for i, v := range c {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}

func positionList(cs [][]float64) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = position(c)
	}
	return strings.Join(parts, ", ")
}

func ringList(css [][][]float64) string {
	parts := make([]string, len(css))
	for i, cs := range css {
		parts[i] = "(" + positionList(cs) + ")"
	}
	return strings.Join(parts, ", ")
}

// Bounds is a lon/lat bounding box accumulated over geometries, used
// for zoom-to-extent.
type Bounds struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`

	set bool
}

// Extend grows the box to include every position of the geometry.
// Malformed geometries are skipped.
func (b *Bounds) Extend(geometry []byte) {
	var g geoJSON
	if err := json.Unmarshal(geometry, &g); err != nil {
		return
	}
	if g.Type == "GeometryCollection" {
		for _, raw := range g.Geometries {
			b.Extend(raw)
		}
		return
	}
	b.extendCoords(g.Coordinates)
}

// extendCoords walks arbitrarily nested coordinate arrays; the leaves
// are [lon, lat, ...] positions.
func (b *Bounds) extendCoords(raw json.RawMessage) {
	var pos []float64
	if err := json.Unmarshal(raw, &pos); err == nil {
		if len(pos) >= 2 {
			b.include(pos[0], pos[1])
		}
		return
	}
	var nested []json.RawMessage
	if err := json.Unmarshal(raw, &nested); err != nil {
		return
	}
	for _, n := range nested {
		b.extendCoords(n)
	}
}

func (b *Bounds) include(x, y float64) {
	if !b.set {
		b.MinX, b.MaxX, b.MinY, b.MaxY = x, x, y, y
		b.set = true
		return
	}
	if x < b.MinX {
		b.MinX = x
	}
	if x > b.MaxX {
		b.MaxX = x
	}
	if y < b.MinY {
		b.MinY = y
	}
	if y > b.MaxY {
		b.MaxY = y
	}
}

// Valid reports whether any position was accumulated.
func (b *Bounds) Valid() bool { return b.set }
