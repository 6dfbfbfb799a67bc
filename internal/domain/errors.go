package domain

import "errors"

// Sentinel errors for domain operations
var (
	// ErrInvalidScope indicates a scope string that does not decompose into
	// a known kind and parameter
	ErrInvalidScope = errors.New("invalid wallpaper scope")

	// ErrWallpaperNotFound indicates the wallpaper does not exist on the
	// site, or is not available at the requested resolution
	ErrWallpaperNotFound = errors.New("wallpaper not found")

	// ErrSiteUnreachable indicates the remote site could not be reached
	ErrSiteUnreachable = errors.New("wallpaper site is unreachable")

	// ErrNoCandidates indicates an empty candidate list was given to the
	// selector
	ErrNoCandidates = errors.New("no candidate wallpapers")

	// ErrAllCandidatesFailed indicates every candidate was tried and none
	// could be switched to
	ErrAllCandidatesFailed = errors.New("no candidate wallpaper could be set")
)
