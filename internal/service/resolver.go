// Package service wires the site adapter, the fetcher and the store into
// the operations the CLI commands run.
package service

import (
	"context"
	"log/slog"

	"wallcraft/internal/domain"
	"wallcraft/internal/fetch"
	"wallcraft/internal/store"
)

// Resolver turns a scope into a concrete identifier list, consulting the
// persistent scope cache before going to the site. Liked and disliked
// scopes never touch the network; they are views over the preference sets.
type Resolver struct {
	store    *store.Store
	fetcher  *fetch.Fetcher
	prefs    *Preferences
	minScore float64
	logger   *slog.Logger
}

func NewResolver(st *store.Store, fetcher *fetch.Fetcher, prefs *Preferences, minScore float64, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{store: st, fetcher: fetcher, prefs: prefs, minScore: minScore, logger: logger}
}

// Resolve returns the wallpapers in scope at res. With force set the cache
// entry is discarded and rebuilt from the site.
func (r *Resolver) Resolve(ctx context.Context, scope domain.Scope, res domain.Resolution, force bool, onProgress fetch.ProgressFunc) ([]domain.WallpaperID, error) {
	switch scope.Kind {
	case domain.ScopeLiked:
		return r.prefs.Liked(), nil
	case domain.ScopeDisliked:
		return r.prefs.Disliked(), nil
	}

	if !force {
		if ids, ok := r.store.GetScopeIDs(scope, res); ok {
			r.logger.Debug("scope cache hit", "scope", scope.String(), "resolution", res.String(), "count", len(ids))
			return ids, nil
		}
	}

	ids, err := r.fetcher.Resolve(ctx, scope, res, r.minScore, onProgress)
	if err != nil {
		return nil, err
	}
	if err := r.store.SaveScopeIDs(scope, res, ids); err != nil {
		r.logger.Warn("failed to cache scope", "scope", scope.String(), "error", err)
	}
	return ids, nil
}
