// Package geoapi is the client for the hosted Hazmapper GeoAPI
// backend. Loading a public map is a three-step fetch: project
// metadata by uuid, then tile servers, then the features GeoJSON.
package geoapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/TACC/hazmapper-qgis-plugin/internal/catalog"
)

// DefaultBaseURL is the production GeoAPI projects root.
const DefaultBaseURL = "https://hazmapper.tacc.utexas.edu/geoapi/projects"

// DefaultAssetTypes is the asset filter the plugin requests.
var DefaultAssetTypes = []string{
	"image", "video", "point_cloud", "streetview", "questionnaire", "no_asset_vector",
}

// Client issues public-view GeoAPI requests. Every request carries the
// application, public-view and guest-uuid headers the backend uses for
// metrics.
type Client struct {
	HTTPClient  *http.Client
	BaseURL     string
	Application string
	GuestUUID   string
}

// NewClient returns a client for the given GeoAPI root. An empty
// baseURL selects production. The guest uuid is loaded from (or
// created under) the user config dir.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		HTTPClient:  &http.Client{Timeout: 60 * time.Second},
		BaseURL:     strings.TrimSuffix(baseURL, "/"),
		Application: "QGIS",
		GuestUUID:   GetOrCreateGuestUUID(),
	}
}

// ProjectByUUID resolves a public map uuid to its project metadata.
// The backend answers with a list; the first entry wins.
func (c *Client) ProjectByUUID(ctx context.Context, uuid string) (*Project, error) {
	body, err := c.get(ctx, fmt.Sprintf("/?uuid=%s", uuid), "project metadata")
	if err != nil {
		return nil, err
	}

	var projects []Project
	if err := json.Unmarshal(body, &projects); err != nil {
		return nil, fmt.Errorf("%w: decode project metadata: %v", catalog.ErrParse, err)
	}
	if len(projects) == 0 {
		return nil, fmt.Errorf("no public project for uuid %s", uuid)
	}
	return &projects[0], nil
}

// TileServers fetches the basemap definitions of a project.
func (c *Client) TileServers(ctx context.Context, projectID int) ([]TileServer, error) {
	body, err := c.get(ctx, fmt.Sprintf("/%d/tile-servers/", projectID), "basemap/tile layers")
	if err != nil {
		return nil, err
	}

	var servers []TileServer
	if err := json.Unmarshal(body, &servers); err != nil {
		return nil, fmt.Errorf("%w: decode tile servers: %v", catalog.ErrParse, err)
	}
	return servers, nil
}

// Features fetches the project features GeoJSON filtered by asset
// type. A nil filter requests the default asset types.
func (c *Client) Features(ctx context.Context, projectID int, assetTypes []string) (*FeatureCollection, error) {
	if assetTypes == nil {
		assetTypes = DefaultAssetTypes
	}
	endpoint := fmt.Sprintf("/%d/features/?assetType=%s", projectID, strings.Join(assetTypes, ","))
	body, err := c.get(ctx, endpoint, "features")
	if err != nil {
		return nil, err
	}

	var fc FeatureCollection
	if err := json.Unmarshal(body, &fc); err != nil {
		return nil, fmt.Errorf("%w: decode features: %v", catalog.ErrParse, err)
	}
	return &fc, nil
}

func (c *Client) get(ctx context.Context, endpoint, description string) ([]byte, error) {
	url := c.BaseURL + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: new request: %w", description, err)
	}
	req.Header.Set("X-Geoapi-Application", c.Application)
	req.Header.Set("X-Geoapi-IsPublicView", "true")
	if c.GuestUUID != "" {
		req.Header.Set("X-Guest-Uuid", c.GuestUUID)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: %v", catalog.ErrNetwork, description, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &catalog.APIError{Operation: "fetching " + description, URL: url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching %s: read body: %v", catalog.ErrNetwork, description, err)
	}
	return body, nil
}
