package emit

import (
	"encoding/json"
	"fmt"

	"github.com/TACC/hazmapper-qgis-plugin/internal/catalog"
)

// JSONDump serializes the full DiscoveryResult losslessly; decoding
// the output reproduces the same structure.
func JSONDump(result catalog.DiscoveryResult) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode discovery result: %w", err)
	}
	return append(data, '\n'), nil
}
