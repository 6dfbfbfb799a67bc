package domain

import (
	"context"
	"io"
)

// Site is the capability boundary to the remote wallpaper site. The core
// never parses markup itself; it orchestrates calls through this interface.
//
// All listing-level operations degrade gracefully: a missing page or an
// unexpected document yields empty results, not an error. Errors are
// reserved for transport-level failures.
type Site interface {
	// PageCount probes how many listing pages exist for a scope at a
	// resolution. Returns 0 when the scope matches nothing.
	PageCount(ctx context.Context, scope Scope, res Resolution) (int, error)

	// ListingPage fetches one listing page (0-based index) and returns its
	// rows. An empty slice means the page contributed nothing.
	ListingPage(ctx context.Context, scope Scope, res Resolution, page int) ([]Listing, error)

	// Metadata fetches the detail page for a wallpaper.
	Metadata(ctx context.Context, id WallpaperID) (*Metadata, error)

	// DownloadURL resolves the direct image URL for a wallpaper at a
	// resolution. Empty string when the wallpaper has no image at that size.
	DownloadURL(ctx context.Context, id WallpaperID, res Resolution) (string, error)

	// Vote submits a thumbs up/down to the site. Best effort; callers
	// ignore failures.
	Vote(ctx context.Context, id WallpaperID, up bool) error

	// Download opens the image at url for reading.
	Download(ctx context.Context, url string) (io.ReadCloser, error)
}
