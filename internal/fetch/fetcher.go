// Package fetch resolves a scope into the full set of wallpaper
// identifiers it contains, by fanning out over every listing page of the
// remote site.
package fetch

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"wallcraft/internal/domain"
)

// DefaultWorkers bounds the page-fetch fan-out. The shared rate limiter,
// not the pool size, governs how fast requests actually leave.
const DefaultWorkers = 50

// ProgressFunc receives (completed, total) page counts as the fan-out
// makes progress. Called from worker goroutines.
type ProgressFunc func(completed, total int)

// Fetcher discovers the page count for a scope and gathers identifiers
// from all pages concurrently.
type Fetcher struct {
	site    domain.Site
	workers int
	logger  *slog.Logger
}

func New(site domain.Site, workers int, logger *slog.Logger) *Fetcher {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{site: site, workers: workers, logger: logger}
}

// Resolve returns the deduplicated identifiers of every wallpaper in
// scope at the given resolution, keeping only rows rated at least
// minScore (a zero minScore keeps everything). Individual pages that fail
// contribute nothing; only a transport failure of the initial probe or a
// cancelled context surfaces as an error. The result is sorted so equal
// inputs produce equal outputs.
func (f *Fetcher) Resolve(ctx context.Context, scope domain.Scope, res domain.Resolution, minScore float64, onProgress ProgressFunc) ([]domain.WallpaperID, error) {
	total, err := f.site.PageCount(ctx, scope, res)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		f.logger.Info("no listing pages", "scope", scope.String(), "resolution", res.String())
		return nil, nil
	}

	var (
		mu        sync.Mutex
		seen      = make(map[domain.WallpaperID]struct{})
		completed atomic.Int64
		failed    atomic.Int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.workers)
	for page := 0; page < total; page++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows, err := f.site.ListingPage(gctx, scope, res, page)
			if err != nil {
				failed.Add(1)
				f.logger.Debug("listing page failed", "scope", scope.String(), "page", page, "error", err)
			}
			mu.Lock()
			for _, row := range rows {
				if minScore > 0 && row.Score < minScore {
					continue
				}
				seen[row.ID] = struct{}{}
			}
			mu.Unlock()
			if onProgress != nil {
				onProgress(int(completed.Add(1)), total)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ids := slices.Sorted(maps.Keys(seen))
	f.logger.Info("resolved scope",
		"scope", scope.String(),
		"resolution", res.String(),
		"pages", total,
		"failed_pages", failed.Load(),
		"wallpapers", len(ids))
	return ids, nil
}
