package fetch

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallcraft/internal/domain"
)

// fakeSite serves canned listing pages.
type fakeSite struct {
	mu        sync.Mutex
	pages     [][]domain.Listing
	pageErrs  map[int]error
	probeErr  error
	pageCalls int
}

func (f *fakeSite) PageCount(ctx context.Context, scope domain.Scope, res domain.Resolution) (int, error) {
	if f.probeErr != nil {
		return 0, f.probeErr
	}
	return len(f.pages), nil
}

func (f *fakeSite) ListingPage(ctx context.Context, scope domain.Scope, res domain.Resolution, page int) ([]domain.Listing, error) {
	f.mu.Lock()
	f.pageCalls++
	f.mu.Unlock()
	if err := f.pageErrs[page]; err != nil {
		return nil, err
	}
	return f.pages[page], nil
}

func (f *fakeSite) Metadata(context.Context, domain.WallpaperID) (*domain.Metadata, error) {
	return nil, domain.ErrWallpaperNotFound
}

func (f *fakeSite) DownloadURL(context.Context, domain.WallpaperID, domain.Resolution) (string, error) {
	return "", nil
}

func (f *fakeSite) Vote(context.Context, domain.WallpaperID, bool) error { return nil }

func (f *fakeSite) Download(context.Context, string) (io.ReadCloser, error) {
	return nil, domain.ErrWallpaperNotFound
}

var (
	testScope = domain.Scope{Kind: domain.ScopeTag, Param: "city"}
	testRes   = domain.Resolution{Width: 1920, Height: 1080}
)

func TestResolveDeduplicatesAcrossPages(t *testing.T) {
	site := &fakeSite{
		pages: [][]domain.Listing{
			{{ID: "a", Score: 9}, {ID: "b", Score: 8}},
			{{ID: "b", Score: 8}, {ID: "c", Score: 7}},
			{}, // page gone, contributes nothing
		},
		pageErrs: map[int]error{2: errors.New("404")},
	}
	f := New(site, 4, nil)

	ids, err := f.Resolve(context.Background(), testScope, testRes, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, []domain.WallpaperID{"a", "b", "c"}, ids)
	assert.Equal(t, 3, site.pageCalls)
}

func TestResolveProbeFailureMeansNothingFound(t *testing.T) {
	site := &fakeSite{}
	f := New(site, 4, nil)

	ids, err := f.Resolve(context.Background(), testScope, testRes, 0, nil)
	require.NoError(t, err)
	assert.Empty(t, ids)
	assert.Zero(t, site.pageCalls, "no pages should be fetched when the probe finds none")
}

func TestResolveProbeTransportErrorPropagates(t *testing.T) {
	site := &fakeSite{probeErr: domain.ErrSiteUnreachable}
	f := New(site, 4, nil)

	_, err := f.Resolve(context.Background(), testScope, testRes, 0, nil)
	require.ErrorIs(t, err, domain.ErrSiteUnreachable)
}

func TestResolveMinScoreFilter(t *testing.T) {
	site := &fakeSite{
		pages: [][]domain.Listing{
			{{ID: "low", Score: 2}, {ID: "mid", Score: 5}, {ID: "high", Score: 9}},
			{{ID: "unrated", Score: 0}},
		},
	}
	f := New(site, 2, nil)
	ctx := context.Background()

	resolve := func(minScore float64) int {
		ids, err := f.Resolve(ctx, testScope, testRes, minScore, nil)
		require.NoError(t, err)
		return len(ids)
	}

	assert.Equal(t, 4, resolve(0), "zero min score keeps everything")
	assert.Equal(t, 2, resolve(5))
	assert.Equal(t, 1, resolve(9))

	// Raising the filter never increases the candidate count.
	prev := resolve(0)
	for _, minScore := range []float64{1, 3, 5, 7, 9, 11} {
		n := resolve(minScore)
		assert.LessOrEqual(t, n, prev, "minScore %v", minScore)
		prev = n
	}
}

func TestResolveReportsProgress(t *testing.T) {
	site := &fakeSite{
		pages: [][]domain.Listing{
			{{ID: "a"}}, {{ID: "b"}}, {{ID: "c"}},
		},
	}
	// A single worker keeps the progress sequence deterministic.
	f := New(site, 1, nil)

	var got [][2]int
	_, err := f.Resolve(context.Background(), testScope, testRes, 0, func(completed, total int) {
		got = append(got, [2]int{completed, total})
	})
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 3}, {2, 3}, {3, 3}}, got)
}

func TestResolveHonorsCancellation(t *testing.T) {
	site := &fakeSite{pages: [][]domain.Listing{{{ID: "a"}}, {{ID: "b"}}}}
	f := New(site, 1, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Resolve(ctx, testScope, testRes, 0, nil)
	require.ErrorIs(t, err, context.Canceled)
}
