package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wallcraft/internal/domain"
)

func TestShowTagsFlags(t *testing.T) {
	cmd := newShowTagsCmd()
	require.NotNil(t, cmd.Flags().Lookup("limit"))
	require.NotNil(t, cmd.Flags().Lookup("recompute"))
}

func TestFilterTags(t *testing.T) {
	ranked := []domain.TagVote{
		{Tag: "city", Votes: 3},
		{Tag: "night city", Votes: 2},
		{Tag: "forest", Votes: -1},
	}

	assert.Equal(t, ranked[:2], filterTags(ranked, "city"))
	assert.Equal(t, ranked[:2], filterTags(ranked, "CITY"))
	assert.Empty(t, filterTags(ranked, "ocean"))
	assert.Equal(t, ranked, filterTags(ranked, ""))
}
