package wpcraft

import (
	"fmt"
	"net/url"

	"wallcraft/internal/domain"
)

// scopeURL builds the listing URL for a scope at a resolution. Page index
// is 0-based; page 0 is the bare listing URL, later pages carry an explicit
// 1-based page marker. Tag and catalog scopes use path-style addressing,
// search uses query parameters.
func (c *Client) scopeURL(scope domain.Scope, res domain.Resolution, page int) (string, error) {
	switch scope.Kind {
	case domain.ScopeTag, domain.ScopeCatalog:
		u := fmt.Sprintf("%s/%s/%s/%s", c.baseURL, scope.Kind, url.PathEscape(scope.Param), res)
		if page > 0 {
			u += fmt.Sprintf("/page%d", page+1)
		}
		return u, nil
	case domain.ScopeSearch:
		u := fmt.Sprintf("%s/search/?query=%s&size=%s", c.baseURL, url.QueryEscape(scope.Param), res)
		if page > 0 {
			u += fmt.Sprintf("&page=%d", page+1)
		}
		return u, nil
	}
	return "", fmt.Errorf("%w: %q has no listing URL", domain.ErrInvalidScope, scope)
}

// rewriteImageURL maps the preview src from the download page to the
// full-size image endpoint.
func rewriteImageURL(baseURL, src string) string {
	if src == "" {
		return ""
	}
	i := len(src) - 1
	for i >= 0 && src[i] != '/' {
		i--
	}
	return baseURL + "/image/" + src[i+1:]
}
