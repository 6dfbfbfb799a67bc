package domain

import (
	"slices"
	"sort"
)

// Preferences holds the liked/disliked sets and the tag-vote aggregate
// derived from them. The sets are kept disjoint by construction: every
// mutation goes through Mark/Unmark, which also keeps TagVotes equal to
// what a full replay of both sets would produce.
type Preferences struct {
	Liked    []WallpaperID  `json:"liked,omitempty"`
	Disliked []WallpaperID  `json:"disliked,omitempty"`
	TagVotes map[string]int `json:"tag_votes,omitempty"`
}

// TagVote is one entry of the tag-vote ranking.
type TagVote struct {
	Tag   string
	Votes int
}

func NewPreferences() *Preferences {
	return &Preferences{TagVotes: make(map[string]int)}
}

func (p *Preferences) IsLiked(id WallpaperID) bool    { return slices.Contains(p.Liked, id) }
func (p *Preferences) IsDisliked(id WallpaperID) bool { return slices.Contains(p.Disliked, id) }

// Mark moves id into the liked (or disliked) set. A wallpaper already in
// the target set is left alone. When the wallpaper sits in the opposite
// set it is removed from there first, each step applying its own vote
// delta over tags. Returns whether anything changed.
func (p *Preferences) Mark(id WallpaperID, liked bool, tags []string) bool {
	if liked && p.IsLiked(id) || !liked && p.IsDisliked(id) {
		return false
	}
	if liked {
		p.removeDisliked(id, tags)
		p.Liked = append(p.Liked, id)
		p.applyVotes(tags, +1)
	} else {
		p.removeLiked(id, tags)
		p.Disliked = append(p.Disliked, id)
		p.applyVotes(tags, -1)
	}
	return true
}

// Unmark removes id from both sets, reverting its vote contribution.
func (p *Preferences) Unmark(id WallpaperID, tags []string) bool {
	changed := p.removeLiked(id, tags)
	return p.removeDisliked(id, tags) || changed
}

func (p *Preferences) removeLiked(id WallpaperID, tags []string) bool {
	i := slices.Index(p.Liked, id)
	if i < 0 {
		return false
	}
	p.Liked = slices.Delete(p.Liked, i, i+1)
	p.applyVotes(tags, -1)
	return true
}

func (p *Preferences) removeDisliked(id WallpaperID, tags []string) bool {
	i := slices.Index(p.Disliked, id)
	if i < 0 {
		return false
	}
	p.Disliked = slices.Delete(p.Disliked, i, i+1)
	p.applyVotes(tags, +1)
	return true
}

func (p *Preferences) applyVotes(tags []string, delta int) {
	if p.TagVotes == nil {
		p.TagVotes = make(map[string]int)
	}
	for _, tag := range tags {
		p.TagVotes[tag] += delta
		if p.TagVotes[tag] == 0 {
			delete(p.TagVotes, tag)
		}
	}
}

// Recompute discards the current vote mapping and rebuilds it by replaying
// +1 per tag for every liked wallpaper and -1 per tag for every disliked
// one. Given the same tag data it produces exactly what the incremental
// path maintains.
func (p *Preferences) Recompute(tagsByID map[WallpaperID][]string) {
	p.TagVotes = make(map[string]int)
	for _, id := range p.Liked {
		p.applyVotes(tagsByID[id], +1)
	}
	for _, id := range p.Disliked {
		p.applyVotes(tagsByID[id], -1)
	}
}

// TopTags returns tags ranked by descending vote, keeping the top limit
// score levels. Tags tying on a kept score are all included, so the
// result may be longer than limit.
func (p *Preferences) TopTags(limit int) []TagVote {
	ranked := make([]TagVote, 0, len(p.TagVotes))
	for tag, votes := range p.TagVotes {
		ranked = append(ranked, TagVote{Tag: tag, Votes: votes})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Votes != ranked[j].Votes {
			return ranked[i].Votes > ranked[j].Votes
		}
		return ranked[i].Tag < ranked[j].Tag
	})
	if limit <= 0 {
		return ranked
	}
	levels, end := 0, 0
	for end < len(ranked) {
		if end == 0 || ranked[end].Votes != ranked[end-1].Votes {
			levels++
			if levels > limit {
				break
			}
		}
		end++
	}
	return ranked[:end]
}
