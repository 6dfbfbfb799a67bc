package service

import (
	"context"
	"log/slog"

	"wallcraft/internal/domain"
	"wallcraft/internal/store"
)

// Preferences maintains the liked/disliked sets and their tag-vote
// aggregate. The algebra lives on domain.Preferences; this service adds
// metadata lookups, persistence and the best-effort remote vote.
type Preferences struct {
	store  *store.Store
	site   domain.Site
	logger *slog.Logger
	prefs  *domain.Preferences
}

func NewPreferences(st *store.Store, site domain.Site, logger *slog.Logger) *Preferences {
	if logger == nil {
		logger = slog.Default()
	}
	return &Preferences{
		store:  st,
		site:   site,
		logger: logger,
		prefs:  st.GetPreferences(),
	}
}

func (p *Preferences) Liked() []domain.WallpaperID    { return p.prefs.Liked }
func (p *Preferences) Disliked() []domain.WallpaperID { return p.prefs.Disliked }

func (p *Preferences) IsLiked(id domain.WallpaperID) bool    { return p.prefs.IsLiked(id) }
func (p *Preferences) IsDisliked(id domain.WallpaperID) bool { return p.prefs.IsDisliked(id) }

// Mark records id as liked or disliked, updating tag votes incrementally
// and mirroring the opinion to the site. Returns false when the wallpaper
// already was in the requested state. The remote vote and a failed
// metadata fetch never block the local change.
func (p *Preferences) Mark(ctx context.Context, id domain.WallpaperID, liked bool) (bool, error) {
	if liked && p.prefs.IsLiked(id) || !liked && p.prefs.IsDisliked(id) {
		return false, nil
	}

	changed := p.prefs.Mark(id, liked, p.tags(ctx, id))
	if !changed {
		return false, nil
	}
	if err := p.store.SavePreferences(p.prefs); err != nil {
		return true, err
	}

	if err := p.site.Vote(ctx, id, liked); err != nil {
		p.logger.Debug("vote submission failed", "id", id, "error", err)
	}
	return true, nil
}

// Unmark removes id from both sets.
func (p *Preferences) Unmark(ctx context.Context, id domain.WallpaperID) error {
	if !p.prefs.IsLiked(id) && !p.prefs.IsDisliked(id) {
		return nil
	}
	p.prefs.Unmark(id, p.tags(ctx, id))
	return p.store.SavePreferences(p.prefs)
}

// RecomputeTagVotes rebuilds the vote mapping from scratch by refetching
// metadata for every liked and disliked wallpaper.
func (p *Preferences) RecomputeTagVotes(ctx context.Context) error {
	tagsByID := make(map[domain.WallpaperID][]string, len(p.prefs.Liked)+len(p.prefs.Disliked))
	for _, id := range p.prefs.Liked {
		tagsByID[id] = p.tags(ctx, id)
	}
	for _, id := range p.prefs.Disliked {
		tagsByID[id] = p.tags(ctx, id)
	}
	p.prefs.Recompute(tagsByID)
	return p.store.SavePreferences(p.prefs)
}

// TopTags returns the highest-voted tags, ties at the boundary included.
func (p *Preferences) TopTags(limit int) []domain.TagVote {
	return p.prefs.TopTags(limit)
}

// tags fetches the tag list for a wallpaper. A wallpaper whose detail
// page is gone contributes no votes; the sets still change so the state
// stays consistent with what Recompute would produce.
func (p *Preferences) tags(ctx context.Context, id domain.WallpaperID) []string {
	md, err := p.site.Metadata(ctx, id)
	if err != nil || md == nil {
		p.logger.Warn("metadata unavailable, skipping tag votes", "id", id, "error", err)
		return nil
	}
	return md.Tags
}
