package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"wallcraft/internal/domain"
)

// fakeSite is a scriptable domain.Site shared by the service tests.
type fakeSite struct {
	mu sync.Mutex

	pages      [][]domain.Listing
	probeCalls int

	metadata    map[domain.WallpaperID]*domain.Metadata
	metadataErr error

	downloadURLs map[domain.WallpaperID]string
	imageData    string

	votes   []voteCall
	voteErr error
}

type voteCall struct {
	id domain.WallpaperID
	up bool
}

func (f *fakeSite) PageCount(context.Context, domain.Scope, domain.Resolution) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.probeCalls++
	return len(f.pages), nil
}

func (f *fakeSite) ListingPage(_ context.Context, _ domain.Scope, _ domain.Resolution, page int) ([]domain.Listing, error) {
	return f.pages[page], nil
}

func (f *fakeSite) Metadata(_ context.Context, id domain.WallpaperID) (*domain.Metadata, error) {
	if f.metadataErr != nil {
		return nil, f.metadataErr
	}
	md, ok := f.metadata[id]
	if !ok {
		return nil, domain.ErrWallpaperNotFound
	}
	return md, nil
}

func (f *fakeSite) DownloadURL(_ context.Context, id domain.WallpaperID, _ domain.Resolution) (string, error) {
	return f.downloadURLs[id], nil
}

func (f *fakeSite) Vote(_ context.Context, id domain.WallpaperID, up bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.votes = append(f.votes, voteCall{id: id, up: up})
	return f.voteErr
}

func (f *fakeSite) Download(_ context.Context, url string) (io.ReadCloser, error) {
	if url == "" {
		return nil, errors.New("no url")
	}
	data := f.imageData
	if data == "" {
		data = "image-bytes"
	}
	return io.NopCloser(strings.NewReader(data)), nil
}

func mustScope(t *testing.T, s string) domain.Scope {
	t.Helper()
	scope, err := domain.ParseScope(s)
	require.NoError(t, err)
	return scope
}

var testRes = domain.Resolution{Width: 1920, Height: 1080}
