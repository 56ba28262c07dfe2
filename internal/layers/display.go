package layers

import "strings"

var displayNames = map[string]string{
	"point_cloud":     "Point Clouds",
	"image":           "Images",
	"streetview":      "StreetView",
	"video":           "Videos",
	"questionnaire":   "Questionnaires",
	"no_asset_vector": "Vector Features",
}

// DisplayName maps an asset type to its layer display name. Unknown
// types are title-cased from their snake_case form.
func DisplayName(assetType string) string {
	if name, ok := displayNames[assetType]; ok {
		return name
	}
	words := strings.Split(assetType, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
