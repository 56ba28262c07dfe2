// Package discovery orchestrates one crawl of the published-projects
// catalog: paginate the listing, detect Hazmapper maps per project,
// assemble the DiscoveryResult consumed by the emitters.
package discovery

import (
	"context"
	"fmt"
	"time"

	"github.com/TACC/hazmapper-qgis-plugin/internal/catalog"
	"github.com/TACC/hazmapper-qgis-plugin/internal/config"
	"github.com/TACC/hazmapper-qgis-plugin/internal/detect"
	"github.com/TACC/hazmapper-qgis-plugin/internal/logging"
)

// Build wires the listing source and the detector for a config. The
// REST client is always constructed because the lookup detector needs
// it even when the listing comes from the feed.
func Build(cfg config.Config) (catalog.Source, detect.Detector) {
	client := catalog.NewClient(cfg.BaseURL)

	var source catalog.Source = client
	if cfg.FeedURL != "" {
		source = catalog.NewFeedSource(cfg.FeedURL)
	}
	return source, detect.New(cfg.Detector, client)
}

// Run performs one sequential crawl. Any network or parse failure
// aborts the run; nothing has been written at that point, so a rerun
// starts from a clean slate.
func Run(ctx context.Context, cfg config.Config, source catalog.Source, detector detect.Detector) (catalog.DiscoveryResult, error) {
	log := logging.For("discovery")

	records, err := fetchAll(ctx, cfg, source)
	if err != nil {
		return catalog.DiscoveryResult{}, err
	}
	fmt.Printf("Total projects fetched: %d\n", len(records))

	var result catalog.DiscoveryResult
	for i, rec := range records {
		if err := ctx.Err(); err != nil {
			return catalog.DiscoveryResult{}, err
		}
		fmt.Printf("Checking project %d/%d: %s\n", i+1, len(records), rec.ProjectID)

		maps, err := detector.HasMaps(ctx, rec)
		if err != nil {
			return catalog.DiscoveryResult{}, fmt.Errorf("detect maps for %s: %w", rec.ProjectID, err)
		}
		if len(maps) == 0 {
			log.Debug("no hazmapper maps", "project", rec.ProjectID)
		} else {
			fmt.Printf("  found %d Hazmapper map(s)\n", len(maps))
			result.Projects = append(result.Projects, catalog.ProjectMaps{
				Project: rec,
				Maps:    maps,
			})
		}

		pause(ctx, time.Duration(cfg.Delay))
	}

	log.Debug("projects with maps", "ids", result.ProjectIDs())
	log.Info("crawl finished",
		"projects_checked", len(records),
		"projects_with_maps", len(result.Projects),
		"maps", result.MapCount())
	return result, nil
}

func fetchAll(ctx context.Context, cfg config.Config, source catalog.Source) ([]catalog.ProjectRecord, error) {
	var all []catalog.ProjectRecord
	offset := 0

	for {
		fmt.Printf("Fetching projects %d to %d...\n", offset, offset+cfg.PageSize)
		records, hasMore, err := source.FetchPage(ctx, offset, cfg.PageSize)
		if err != nil {
			return nil, fmt.Errorf("fetch page at offset %d: %w", offset, err)
		}
		all = append(all, records...)

		if cfg.Short && len(all) >= cfg.ShortLimit {
			all = all[:cfg.ShortLimit]
			break
		}
		if !hasMore || len(records) == 0 {
			break
		}
		offset += cfg.PageSize
		pause(ctx, time.Duration(cfg.Delay))
	}
	return all, nil
}

// pause sleeps for the politeness delay, returning early on context
// cancellation.
func pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
