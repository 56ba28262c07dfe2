package detect

import (
	"context"
	"strings"

	"github.com/TACC/hazmapper-qgis-plugin/internal/catalog"
)

// Detector decides whether a project has associated Hazmapper maps.
// A nil/empty slice with a nil error means "no map"; it carries no
// side effects. Implemented by:
// - EmbeddedDetector (listing fields only)
// - LookupDetector (secondary detail fetch)
// - HybridDetector (embedded first, lookup fallback)
type Detector interface {
	HasMaps(ctx context.Context, project catalog.ProjectRecord) ([]catalog.MapReference, error)
}

// Strategy names accepted by New.
const (
	StrategyEmbedded = "embedded"
	StrategyLookup   = "lookup"
	StrategyHybrid   = "hybrid"
)

// New returns the detector for a strategy name. Unknown names fall
// back to the hybrid chain.
func New(strategy string, client *catalog.Client) Detector {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case StrategyEmbedded:
		return &EmbeddedDetector{}
	case StrategyLookup:
		return &LookupDetector{Client: client}
	default:
		return &HybridDetector{
			Embedded: &EmbeddedDetector{},
			Lookup:   &LookupDetector{Client: client},
		}
	}
}

// mapsFromValue extracts hazmapperMaps entries out of a loosely typed
// publication object (baseProject or a tree node value).
func mapsFromValue(projectID string, value map[string]any) []catalog.MapReference {
	if value == nil {
		return nil
	}
	raw, ok := value["hazmapperMaps"].([]any)
	if !ok || len(raw) == 0 {
		return nil
	}

	out := make([]catalog.MapReference, 0, len(raw))
	for _, entry := range raw {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		uuid, _ := m["uuid"].(string)
		uuid = strings.TrimSpace(uuid)
		if uuid == "" {
			continue
		}
		name, _ := m["name"].(string)
		out = append(out, catalog.MapReference{
			ProjectID: projectID,
			UUID:      uuid,
			Name:      strings.TrimSpace(name),
			URL:       catalog.ViewerURL(uuid),
		})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
