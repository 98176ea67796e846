package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathKindMatches(t *testing.T) {
	path := PathExact("/foo/bar")
	assert.True(t, path.Matches("/foo/bar"))
	assert.True(t, path.Matches("/foo/bar/"))
	assert.False(t, path.Matches("/foo"))
	assert.False(t, path.Matches("/foo/"))
	assert.False(t, path.Matches("/foo/bar/baz"))
	assert.False(t, path.Matches("/foo/bar/baz/"))

	glob1, err := PathGlob("/foo/*")
	require.NoError(t, err)
	assert.True(t, glob1.Matches("/foo/bar"))
	assert.True(t, glob1.Matches("/foo/bar/"))
	assert.True(t, glob1.Matches("/foo/bar/baz"))
	assert.True(t, glob1.Matches("/foo/bar/baz/"))
	assert.False(t, glob1.Matches("/foo"))
	assert.False(t, glob1.Matches("/foo/"))

	glob2, err := PathGlob("/foo/*/baz")
	require.NoError(t, err)
	assert.True(t, glob2.Matches("/foo/bar/baz"))
	assert.True(t, glob2.Matches("/foo/bar/baz/"))
	assert.True(t, glob2.Matches("/foo/a/baz"))
	assert.True(t, glob2.Matches("/foo/a/baz/"))
	assert.False(t, glob2.Matches("/foo/bar"))
	assert.False(t, glob2.Matches("/foo/bar/"))
	assert.False(t, glob2.Matches("/foo/bar/bar"))
	assert.False(t, glob2.Matches("/foo/bar/bar/"))

	glob3, err := PathGlob("/foo/?/baz")
	require.NoError(t, err)
	assert.True(t, glob3.Matches("/foo/a/baz"))
	assert.True(t, glob3.Matches("/foo/a/baz/"))
	assert.True(t, glob3.Matches("/foo/b/baz"))
	assert.True(t, glob3.Matches("/foo/b/baz/"))
	assert.False(t, glob3.Matches("/foo/bar/baz"))
	assert.False(t, glob3.Matches("/foo/bar/baz/"))

	root := PathExact("/")
	assert.True(t, root.Matches("/"))
	assert.False(t, root.Matches("/foo"))
	assert.False(t, root.Matches("/foo/"))

	empty := PathExact("")
	assert.True(t, empty.Matches(""))
	assert.False(t, empty.Matches("/"))
	assert.False(t, empty.Matches("/foo"))
}

func TestPathBucketMatches(t *testing.T) {
	empty := NewPathBucket(nil)
	assert.True(t, empty.Matches(""))
	assert.True(t, empty.Matches("/"))
	assert.True(t, empty.Matches("/foo/bar"))
	assert.True(t, empty.Matches("/foo/bar/baz/"))

	globBarStar, err := PathGlob("/foo/bar/*")
	require.NoError(t, err)
	globFooStarBaz, err := PathGlob("/foo/*/baz")
	require.NoError(t, err)

	mixed := NewPathBucket([]PathMatcher{
		{Permission: Acceptable, Kind: PathExact("/foo/bar")},
		{Permission: Acceptable, Kind: globBarStar},
		{Permission: Acceptable, Kind: globFooStarBaz},
	})
	assert.True(t, mixed.Matches("/foo/bar"))
	assert.True(t, mixed.Matches("/foo/bar/baz"))
	assert.True(t, mixed.Matches("/foo/a/baz"))
	assert.False(t, mixed.Matches("/foo"))
	assert.False(t, mixed.Matches("/foot/bar/bar"))
	assert.False(t, mixed.Matches("/foo/a/bar"))

	globFooStarBaz2, err := PathGlob("/foo/*/baz")
	require.NoError(t, err)
	withUnacceptable := NewPathBucket([]PathMatcher{
		{Permission: Acceptable, Kind: PathExact("/foo/bar")},
		{Permission: Acceptable, Kind: globBarStar},
		{Permission: Unacceptable, Kind: globFooStarBaz2},
	})
	assert.True(t, withUnacceptable.Matches("/foo/bar"))
	assert.True(t, withUnacceptable.Matches("/foo/bar/a"))
	assert.False(t, withUnacceptable.Matches("/foo/bar/baz"))
	assert.False(t, withUnacceptable.Matches("/foo/a/baz"))
}
