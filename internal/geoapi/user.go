package geoapi

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// GetOrCreateGuestUUID returns the persistent anonymous identifier
// sent as X-Guest-Uuid. It lives under the user config dir; when the
// dir is unavailable a fresh uuid is used for the session only.
func GetOrCreateGuestUUID() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return uuid.NewString()
	}
	path := filepath.Join(dir, "hazmapper", "guest_uuid")

	if data, err := os.ReadFile(path); err == nil {
		s := strings.TrimSpace(string(data))
		if _, err := uuid.Parse(s); err == nil {
			return s
		}
	}

	id := uuid.NewString()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return id
	}
	_ = os.WriteFile(path, []byte(id+"\n"), 0o600)
	return id
}
