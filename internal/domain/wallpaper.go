package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// WallpaperID is the site-assigned identifier of a single wallpaper,
// e.g. "city_night_lights_12345". It is opaque to everything but the
// site adapter.
type WallpaperID string

// Resolution is the target display size in pixels. It is used both as a
// request parameter against the remote site and as a cache partition key.
type Resolution struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ParseResolution parses a "WIDTHxHEIGHT" string such as "1920x1080".
func ParseResolution(s string) (Resolution, error) {
	w, h, ok := strings.Cut(strings.TrimSpace(s), "x")
	if !ok {
		return Resolution{}, fmt.Errorf("invalid resolution %q: expected WIDTHxHEIGHT", s)
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return Resolution{}, fmt.Errorf("invalid resolution width %q", w)
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return Resolution{}, fmt.Errorf("invalid resolution height %q", h)
	}
	return Resolution{Width: width, Height: height}, nil
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// Listing is one row of a listing page: an identifier plus the rating
// shown next to it.
type Listing struct {
	ID    WallpaperID
	Score float64
}

// Metadata describes a single wallpaper as presented on its detail page.
// It is fetched on demand and never persisted; callers that need it twice
// fetch it twice.
type Metadata struct {
	ID      WallpaperID `json:"id"`
	Tags    []string    `json:"tags"`
	Score   float64     `json:"score"`
	Author  string      `json:"author,omitempty"`
	License string      `json:"license,omitempty"`
	Source  string      `json:"source,omitempty"`
}

// State is the per-user session state persisted between invocations.
type State struct {
	Current WallpaperID   `json:"current,omitempty"`
	History []WallpaperID `json:"history,omitempty"` // most recent first
	Counter int           `json:"counter"`
	Auto    string        `json:"auto,omitempty"` // e.g. "2 hours", empty when disabled
}

// PushHistory records the previous wallpaper before switching away from it.
// History is most-recent-first and bounded by limit; the oldest entries are
// evicted on overflow.
func (s *State) PushHistory(id WallpaperID, limit int) {
	if id == "" {
		return
	}
	s.History = append([]WallpaperID{id}, s.History...)
	if limit > 0 && len(s.History) > limit {
		s.History = s.History[:limit]
	}
}
