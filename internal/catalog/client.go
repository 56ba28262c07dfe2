package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the DesignSafe API root.
	DefaultBaseURL = "https://www.designsafe-ci.org"

	// ViewerBaseURL is the hosted Hazmapper viewer root used to build
	// public deep links.
	ViewerBaseURL = "https://hazmapper.tacc.utexas.edu/hazmapper"
)

// ViewerURL builds the public viewer deep link for a map uuid.
func ViewerURL(uuid string) string {
	return fmt.Sprintf("%s/project-public/%s/", ViewerBaseURL, uuid)
}

// Source yields one page of the published-projects listing at a time.
// Implemented by Client (REST listing) and FeedSource (RSS listing).
type Source interface {
	FetchPage(ctx context.Context, offset, limit int) ([]ProjectRecord, bool, error)
}

// Client talks to the DesignSafe publications API.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
}

// NewClient returns a client for the given API root. An empty baseURL
// selects the production DesignSafe endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
	}
}

// listingEnvelope is the wire shape of one listing page.
type listingEnvelope struct {
	Result []ProjectRecord `json:"result"`
	Total  int             `json:"total"`
}

// FetchPage returns the records of one listing page plus a flag
// indicating whether further pages may exist. A short page (fewer than
// limit records) terminates pagination, matching the API contract.
func (c *Client) FetchPage(ctx context.Context, offset, limit int) ([]ProjectRecord, bool, error) {
	if offset < 0 || limit <= 0 {
		return nil, false, fmt.Errorf("fetch page: bad offset/limit %d/%d", offset, limit)
	}

	u := fmt.Sprintf("%s/api/publications/v2?offset=%d&limit=%d", c.BaseURL, offset, limit)
	body, err := c.get(ctx, u, "listing page")
	if err != nil {
		return nil, false, err
	}

	var env listingEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, false, fmt.Errorf("%w: decode listing page: %v", ErrParse, err)
	}

	hasMore := len(env.Result) == limit
	return env.Result, hasMore, nil
}

// ProjectDetail is the per-project publication document. Only the
// fields the map detector inspects are decoded.
type ProjectDetail struct {
	BaseProject map[string]any `json:"baseProject"`
	Tree        *TreeNode      `json:"tree"`
}

// TreeNode is one node of the publication entity tree.
type TreeNode struct {
	Value    map[string]any `json:"value"`
	Children []TreeNode     `json:"children"`
}

// FetchDetail fetches the full publication document for one project.
func (c *Client) FetchDetail(ctx context.Context, projectID string) (*ProjectDetail, error) {
	u := fmt.Sprintf("%s/api/publications/v2/%s", c.BaseURL, projectID)
	body, err := c.get(ctx, u, "project detail")
	if err != nil {
		return nil, err
	}

	var detail ProjectDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("%w: decode project %s: %v", ErrParse, projectID, err)
	}
	return &detail, nil
}

func (c *Client) get(ctx context.Context, url, operation string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: new request: %w", operation, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNetwork, operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Operation: operation, URL: url, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: read body: %v", ErrNetwork, operation, err)
	}
	return body, nil
}
