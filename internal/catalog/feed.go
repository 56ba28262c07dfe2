package catalog

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// FeedSource reads the catalog's RSS/Atom feed of recent publications
// as an alternative listing source. A feed is a single flat document,
// so pagination is simulated: the feed is fetched once and sliced by
// offset/limit.
type FeedSource struct {
	Client  *http.Client
	FeedURL string

	items []ProjectRecord
}

func NewFeedSource(feedURL string) *FeedSource {
	return &FeedSource{
		Client:  &http.Client{Timeout: 15 * time.Second},
		FeedURL: feedURL,
	}
}

var projectIDRe = regexp.MustCompile(`PRJ-\d+`)

// FetchPage implements Source over the feed. The first call fetches
// and parses the whole feed; later pages slice the cached items.
func (f *FeedSource) FetchPage(ctx context.Context, offset, limit int) ([]ProjectRecord, bool, error) {
	if offset < 0 || limit <= 0 {
		return nil, false, fmt.Errorf("fetch feed page: bad offset/limit %d/%d", offset, limit)
	}

	if f.items == nil {
		if err := f.load(ctx); err != nil {
			return nil, false, err
		}
	}

	if offset >= len(f.items) {
		return nil, false, nil
	}
	end := offset + limit
	if end > len(f.items) {
		end = len(f.items)
	}
	return f.items[offset:end], end < len(f.items), nil
}

func (f *FeedSource) load(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.FeedURL, nil)
	if err != nil {
		return fmt.Errorf("feed request: %w", err)
	}
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml")

	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: publications feed: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{Operation: "publications feed", URL: f.FeedURL, Status: resp.StatusCode}
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: parse publications feed: %v", ErrParse, err)
	}

	f.items = make([]ProjectRecord, 0, len(feed.Items))
	for _, it := range feed.Items {
		id := projectIDRe.FindString(it.Link)
		if id == "" {
			id = projectIDRe.FindString(it.GUID)
		}
		if id == "" {
			// Not a project publication entry (news post, dataset DOI, ...).
			continue
		}
		rec := ProjectRecord{
			ProjectID: id,
			Title:     strings.TrimSpace(it.Title),
		}
		if it.PublishedParsed != nil {
			rec.Created = it.PublishedParsed.Format(time.RFC3339)
		}
		f.items = append(f.items, rec)
	}
	return nil
}
