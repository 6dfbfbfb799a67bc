package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScope(t *testing.T) {
	tests := []struct {
		in      string
		want    Scope
		wantErr bool
	}{
		{in: "tag/city", want: Scope{Kind: ScopeTag, Param: "city"}},
		{in: "catalog/nature", want: Scope{Kind: ScopeCatalog, Param: "nature"}},
		{in: "search/winter forest", want: Scope{Kind: ScopeSearch, Param: "winter forest"}},
		{in: "tag/City", want: Scope{Kind: ScopeTag, Param: "city"}},
		{in: "liked", want: Scope{Kind: ScopeLiked}},
		{in: "disliked", want: Scope{Kind: ScopeDisliked}},
		{in: "tag", wantErr: true},
		{in: "catalog/", wantErr: true},
		{in: "liked/extra", wantErr: true},
		{in: "bogus/city", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseScope(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidScope)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScopeStringRoundTrip(t *testing.T) {
	for _, in := range []string{"tag/city", "catalog/nature", "search/ocean", "liked", "disliked"} {
		scope, err := ParseScope(in)
		require.NoError(t, err)
		assert.Equal(t, in, scope.String())

		again, err := ParseScope(scope.String())
		require.NoError(t, err)
		assert.Equal(t, scope, again)
	}
}

func TestScopeRemote(t *testing.T) {
	assert.True(t, Scope{Kind: ScopeTag, Param: "city"}.Remote())
	assert.True(t, Scope{Kind: ScopeCatalog, Param: "city"}.Remote())
	assert.True(t, Scope{Kind: ScopeSearch, Param: "city"}.Remote())
	assert.False(t, Scope{Kind: ScopeLiked}.Remote())
	assert.False(t, Scope{Kind: ScopeDisliked}.Remote())
}

func TestScopeDescribe(t *testing.T) {
	scope, err := ParseScope("tag/city")
	require.NoError(t, err)
	assert.Equal(t, "with tag 'city'", scope.Describe())

	scope, err = ParseScope("liked")
	require.NoError(t, err)
	assert.Equal(t, "marked as liked", scope.Describe())
}

func TestParseResolution(t *testing.T) {
	res, err := ParseResolution("1920x1080")
	require.NoError(t, err)
	assert.Equal(t, Resolution{Width: 1920, Height: 1080}, res)
	assert.Equal(t, "1920x1080", res.String())

	for _, bad := range []string{"", "1920", "1920x", "x1080", "0x1080", "1920x-1", "WxH"} {
		_, err := ParseResolution(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
