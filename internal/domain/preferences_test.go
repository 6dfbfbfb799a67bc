package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkLiked(t *testing.T) {
	p := NewPreferences()

	changed := p.Mark("wp1", true, []string{"sky", "blue"})
	require.True(t, changed)
	assert.True(t, p.IsLiked("wp1"))
	assert.Equal(t, map[string]int{"sky": 1, "blue": 1}, p.TagVotes)

	// Marking again is a no-op and must not double-apply votes.
	changed = p.Mark("wp1", true, []string{"sky", "blue"})
	assert.False(t, changed)
	assert.Equal(t, map[string]int{"sky": 1, "blue": 1}, p.TagVotes)
}

func TestMarkLikedThenDisliked(t *testing.T) {
	p := NewPreferences()
	tags := []string{"sky", "blue"}

	p.Mark("wp1", true, tags)
	p.Mark("wp1", false, tags)

	// The dual transition is two steps, each with its own delta: the net
	// move from +1 to -1 is -2 per tag.
	assert.Equal(t, map[string]int{"sky": -1, "blue": -1}, p.TagVotes)
	assert.False(t, p.IsLiked("wp1"))
	assert.True(t, p.IsDisliked("wp1"))
}

func TestMarkKeepsSetsDisjoint(t *testing.T) {
	p := NewPreferences()
	ops := []struct {
		id    WallpaperID
		liked bool
	}{
		{"a", true}, {"b", false}, {"a", false}, {"c", true},
		{"b", true}, {"a", true}, {"c", true}, {"b", false},
	}
	for _, op := range ops {
		p.Mark(op.id, op.liked, []string{"t-" + string(op.id)})
		for _, id := range p.Liked {
			assert.False(t, p.IsDisliked(id), "%s in both sets", id)
		}
	}
	assert.ElementsMatch(t, []WallpaperID{"c", "a"}, p.Liked)
	assert.ElementsMatch(t, []WallpaperID{"b"}, p.Disliked)
}

func TestUnmark(t *testing.T) {
	p := NewPreferences()
	tags := []string{"sky"}

	p.Mark("wp1", true, tags)
	require.True(t, p.Unmark("wp1", tags))
	assert.False(t, p.IsLiked("wp1"))
	assert.False(t, p.IsDisliked("wp1"))
	assert.Empty(t, p.TagVotes)

	assert.False(t, p.Unmark("wp1", tags))
}

func TestIncrementalVotesMatchRecompute(t *testing.T) {
	tagsByID := map[WallpaperID][]string{
		"a": {"sky", "city"},
		"b": {"city", "night"},
		"c": {"sky"},
		"d": {"ocean", "night", "sky"},
	}

	p := NewPreferences()
	ops := []struct {
		id     WallpaperID
		liked  bool
		unmark bool
	}{
		{id: "a", liked: true},
		{id: "b", liked: false},
		{id: "c", liked: true},
		{id: "a", liked: false},
		{id: "d", liked: false},
		{id: "b", unmark: true},
		{id: "d", liked: true},
		{id: "c", liked: true}, // no-op
	}
	for _, op := range ops {
		if op.unmark {
			p.Unmark(op.id, tagsByID[op.id])
		} else {
			p.Mark(op.id, op.liked, tagsByID[op.id])
		}
	}

	replayed := &Preferences{Liked: p.Liked, Disliked: p.Disliked}
	replayed.Recompute(tagsByID)
	assert.Equal(t, replayed.TagVotes, p.TagVotes)

	// Recompute is idempotent.
	before := p.TagVotes
	p.Recompute(tagsByID)
	assert.Equal(t, before, p.TagVotes)
}

func TestTopTagsIncludesBoundaryTies(t *testing.T) {
	p := NewPreferences()
	p.TagVotes = map[string]int{"a": 5, "b": 5, "c": 3, "d": 3}

	// Two score levels within limit 2, ties included at each: all four.
	got := p.TopTags(2)
	assert.Equal(t, []TagVote{{"a", 5}, {"b", 5}, {"c", 3}, {"d", 3}}, got)

	got = p.TopTags(1)
	assert.Equal(t, []TagVote{{"a", 5}, {"b", 5}}, got)

	// A limit past the end returns everything, as does no limit.
	assert.Len(t, p.TopTags(10), 4)
	assert.Len(t, p.TopTags(0), 4)

	p.TagVotes = map[string]int{"a": 5, "b": 4, "c": 3}
	assert.Equal(t, []TagVote{{"a", 5}, {"b", 4}}, p.TopTags(2))
}

func TestPushHistoryBound(t *testing.T) {
	s := &State{}
	for i := 0; i < 10; i++ {
		s.PushHistory(WallpaperID(rune('a'+i)), 3)
	}
	// Most recent first, capped at the limit.
	assert.Equal(t, []WallpaperID{"j", "i", "h"}, s.History)

	s.PushHistory("", 3)
	assert.Len(t, s.History, 3)
}
