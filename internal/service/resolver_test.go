package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallcraft/internal/domain"
	"wallcraft/internal/fetch"
	"wallcraft/internal/store"
)

func newTestResolver(t *testing.T, site *fakeSite, minScore float64) (*Resolver, *store.Store, *Preferences) {
	t.Helper()
	st, err := store.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	prefs := NewPreferences(st, site, nil)
	fetcher := fetch.New(site, 2, nil)
	return NewResolver(st, fetcher, prefs, minScore, nil), st, prefs
}

func TestResolveFetchesOnMissAndCachesResult(t *testing.T) {
	site := &fakeSite{pages: [][]domain.Listing{
		{{ID: "a", Score: 9}, {ID: "b", Score: 8}},
		{{ID: "b", Score: 8}, {ID: "c", Score: 7}},
	}}
	r, st, _ := newTestResolver(t, site, 0)
	scope := mustScope(t, "tag/city")
	ctx := context.Background()

	ids, err := r.Resolve(ctx, scope, testRes, false, nil)
	require.NoError(t, err)
	assert.Equal(t, []domain.WallpaperID{"a", "b", "c"}, ids)
	assert.Equal(t, 1, site.probeCalls)

	cached, ok := st.GetScopeIDs(scope, testRes)
	require.True(t, ok)
	assert.Equal(t, ids, cached)

	// Second resolve is served from the cache; the site is not touched.
	again, err := r.Resolve(ctx, scope, testRes, false, nil)
	require.NoError(t, err)
	assert.Equal(t, ids, again)
	assert.Equal(t, 1, site.probeCalls)
}

func TestResolveForceRefetches(t *testing.T) {
	site := &fakeSite{pages: [][]domain.Listing{{{ID: "a"}}}}
	r, st, _ := newTestResolver(t, site, 0)
	scope := mustScope(t, "tag/city")
	ctx := context.Background()

	require.NoError(t, st.SaveScopeIDs(scope, testRes, []domain.WallpaperID{"stale"}))

	ids, err := r.Resolve(ctx, scope, testRes, true, nil)
	require.NoError(t, err)
	assert.Equal(t, []domain.WallpaperID{"a"}, ids)
	assert.Equal(t, 1, site.probeCalls)

	cached, ok := st.GetScopeIDs(scope, testRes)
	require.True(t, ok)
	assert.Equal(t, []domain.WallpaperID{"a"}, cached, "force rewrites the cache entry")
}

func TestResolveAppliesMinScore(t *testing.T) {
	site := &fakeSite{pages: [][]domain.Listing{
		{{ID: "low", Score: 3}, {ID: "high", Score: 9}},
	}}
	r, _, _ := newTestResolver(t, site, 5)

	ids, err := r.Resolve(context.Background(), mustScope(t, "tag/city"), testRes, false, nil)
	require.NoError(t, err)
	assert.Equal(t, []domain.WallpaperID{"high"}, ids)
}

func TestResolveLikedScopesSkipTheSite(t *testing.T) {
	site := &fakeSite{metadata: map[domain.WallpaperID]*domain.Metadata{
		"wp1": {ID: "wp1", Tags: []string{"sky"}},
		"wp2": {ID: "wp2", Tags: []string{"sea"}},
	}}
	r, _, prefs := newTestResolver(t, site, 0)
	ctx := context.Background()

	_, err := prefs.Mark(ctx, "wp1", true)
	require.NoError(t, err)
	_, err = prefs.Mark(ctx, "wp2", false)
	require.NoError(t, err)

	liked, err := r.Resolve(ctx, mustScope(t, "liked"), testRes, false, nil)
	require.NoError(t, err)
	assert.Equal(t, []domain.WallpaperID{"wp1"}, liked)

	disliked, err := r.Resolve(ctx, mustScope(t, "disliked"), testRes, false, nil)
	require.NoError(t, err)
	assert.Equal(t, []domain.WallpaperID{"wp2"}, disliked)

	assert.Zero(t, site.probeCalls, "preference scopes never hit the site listing")
}
