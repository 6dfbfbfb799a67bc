package domain

import (
	"fmt"
	"strings"
)

// ScopeKind identifies how a scope selects wallpapers.
type ScopeKind string

const (
	ScopeTag      ScopeKind = "tag"
	ScopeCatalog  ScopeKind = "catalog"
	ScopeSearch   ScopeKind = "search"
	ScopeLiked    ScopeKind = "liked"
	ScopeDisliked ScopeKind = "disliked"
)

// Scope is a user-selected filter describing which wallpapers to consider.
// Tag, catalog and search scopes resolve against the remote site; liked and
// disliked resolve directly from local preferences.
type Scope struct {
	Kind  ScopeKind `json:"kind"`
	Param string    `json:"param,omitempty"`
}

// ParseScope parses a scope string such as "tag/city", "search/winter forest"
// or "liked". An unknown kind or a missing parameter is a configuration
// error, not something to recover from.
func ParseScope(s string) (Scope, error) {
	kind, param, _ := strings.Cut(s, "/")
	switch ScopeKind(kind) {
	case ScopeTag, ScopeCatalog, ScopeSearch:
		if param == "" {
			return Scope{}, fmt.Errorf("%w: %q requires a parameter", ErrInvalidScope, kind)
		}
		return Scope{Kind: ScopeKind(kind), Param: strings.ToLower(param)}, nil
	case ScopeLiked, ScopeDisliked:
		if param != "" {
			return Scope{}, fmt.Errorf("%w: %q takes no parameter", ErrInvalidScope, kind)
		}
		return Scope{Kind: ScopeKind(kind)}, nil
	}
	return Scope{}, fmt.Errorf("%w: %q", ErrInvalidScope, s)
}

// Remote reports whether resolving this scope requires the remote site.
func (s Scope) Remote() bool {
	return s.Kind == ScopeTag || s.Kind == ScopeCatalog || s.Kind == ScopeSearch
}

func (s Scope) String() string {
	if s.Param == "" {
		return string(s.Kind)
	}
	return string(s.Kind) + "/" + s.Param
}

// Describe returns the human-readable phrase used in status messages,
// e.g. "with tag 'city'".
func (s Scope) Describe() string {
	switch s.Kind {
	case ScopeTag:
		return fmt.Sprintf("with tag '%s'", s.Param)
	case ScopeCatalog:
		return fmt.Sprintf("from catalog '%s'", s.Param)
	case ScopeSearch:
		return fmt.Sprintf("in search results for '%s'", s.Param)
	case ScopeLiked:
		return "marked as liked"
	case ScopeDisliked:
		return "marked as disliked"
	}
	return string(s.Kind)
}
