package wpcraft

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"wallcraft/internal/domain"
)

const (
	// DefaultBaseURL is the production wallpaperscraft endpoint.
	DefaultBaseURL = "https://wallpaperscraft.com"

	// DefaultRequestInterval is the minimum spacing between requests to
	// the site. The markup scraping makes every operation at least one
	// full page load, so the client stays deliberately slow.
	DefaultRequestInterval = 5 * time.Second

	defaultTimeout = 30 * time.Second
	userAgent      = "wallcraft/1.0"
)

// statusError reports a non-2xx response. Listing-level callers treat it
// as "nothing here"; detail-level callers map it to ErrWallpaperNotFound.
type statusError struct {
	code int
	url  string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d for %s", e.code, e.url)
}

// Client implements domain.Site against wallpaperscraft.com. One Client
// owns one HTTP connection pool and one rate limiter; every request from
// every goroutine waits on the same limiter, so the minimum spacing holds
// globally.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a site client. An empty baseURL selects the production
// site; a non-positive interval disables rate limiting (used in tests).
func NewClient(baseURL string, interval time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = slog.Default()
	}
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger,
	}
}

// get performs a rate-limited GET and returns the parsed document.
func (c *Client) get(ctx context.Context, url string) (*goquery.Document, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("site request", "url", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("site request failed", "url", url, "error", err)
		return nil, fmt.Errorf("%w: %v", domain.ErrSiteUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &statusError{code: resp.StatusCode, url: url}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}
	return doc, nil
}

// PageCount probes the first listing page and reads the pager. A missing
// pager on a successful page means a single page of results; a non-2xx
// probe means the scope matches nothing.
func (c *Client) PageCount(ctx context.Context, scope domain.Scope, res domain.Resolution) (int, error) {
	url, err := c.scopeURL(scope, res, 0)
	if err != nil {
		return 0, err
	}
	doc, err := c.get(ctx, url)
	if err != nil {
		if _, ok := err.(*statusError); ok {
			return 0, nil
		}
		return 0, err
	}
	return parsePageCount(doc), nil
}

// ListingPage fetches one listing page. Pages that are gone or have an
// unexpected structure contribute zero rows.
func (c *Client) ListingPage(ctx context.Context, scope domain.Scope, res domain.Resolution, page int) ([]domain.Listing, error) {
	url, err := c.scopeURL(scope, res, page)
	if err != nil {
		return nil, err
	}
	doc, err := c.get(ctx, url)
	if err != nil {
		if _, ok := err.(*statusError); ok {
			return nil, nil
		}
		return nil, err
	}
	return parseListing(doc), nil
}

// Metadata fetches and parses the wallpaper detail page.
func (c *Client) Metadata(ctx context.Context, id domain.WallpaperID) (*domain.Metadata, error) {
	url := fmt.Sprintf("%s/wallpaper/%s", c.baseURL, id)
	doc, err := c.get(ctx, url)
	if err != nil {
		if _, ok := err.(*statusError); ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrWallpaperNotFound, id)
		}
		return nil, err
	}
	md := parseMetadata(doc)
	md.ID = id
	return md, nil
}

// DownloadURL scrapes the download page for the direct image URL at the
// given resolution. Empty when the wallpaper has no image at that size.
func (c *Client) DownloadURL(ctx context.Context, id domain.WallpaperID, res domain.Resolution) (string, error) {
	url := fmt.Sprintf("%s/download/%s/%s", c.baseURL, id, res)
	doc, err := c.get(ctx, url)
	if err != nil {
		if _, ok := err.(*statusError); ok {
			return "", nil
		}
		return "", err
	}
	return rewriteImageURL(c.baseURL, parseDownloadImage(doc)), nil
}

// Vote submits a rating to the site. Failures are reported to the caller
// but local state never depends on them.
func (c *Client) Vote(ctx context.Context, id domain.WallpaperID, up bool) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	direction := "down"
	if up {
		direction = "up"
	}
	url := fmt.Sprintf("%s/vote/%s/%s", c.baseURL, id, direction)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSiteUnreachable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &statusError{code: resp.StatusCode, url: url}
	}
	return nil
}

// Download opens the image at url for streaming. The caller closes the
// returned reader.
func (c *Client) Download(ctx context.Context, url string) (io.ReadCloser, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSiteUnreachable, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &statusError{code: resp.StatusCode, url: url}
	}
	return resp.Body, nil
}
