package rules

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteAdmitsDefaultRoute(t *testing.T) {
	route := NewRoute(HostBucket{}, MethodBucket{}, PathBucket{}, PortBucket{}, SchemeBucket{})

	u, err := url.Parse("http://localhost:8080/")
	require.NoError(t, err)
	assert.True(t, route.Admits(u))

	u, err = url.Parse("http://localhost/")
	require.NoError(t, err)
	assert.True(t, route.Admits(u))

	u, err = url.Parse("test://localhost/")
	require.NoError(t, err)
	assert.False(t, route.Admits(u))

	u, err = url.Parse("http://localhost:8080/foo")
	require.NoError(t, err)
	assert.True(t, route.Admits(u))
}

func TestRouteAdmitsRequiresHost(t *testing.T) {
	route := NewRoute(HostBucket{}, MethodBucket{}, PathBucket{}, PortBucket{}, SchemeBucket{})

	u, err := url.Parse("unix:/run/foo.socket")
	require.NoError(t, err)
	assert.False(t, route.Admits(u))
}

func TestRouteAdmitsCombinesAllDimensions(t *testing.T) {
	hostGlob, err := HostGlob("*.example.com")
	require.NoError(t, err)
	pathGlob, err := PathGlob("/blog/*")
	require.NoError(t, err)

	route := NewRoute(
		NewHostBucket([]HostMatcher{{Permission: Acceptable, Kind: hostGlob}}),
		MethodBucket{},
		NewPathBucket([]PathMatcher{{Permission: Acceptable, Kind: pathGlob}}),
		PortBucket{},
		NewSchemeBucket([]SchemeMatcher{{Permission: Acceptable, Kind: SchemeHTTPS}}),
	)

	admitted, err := url.Parse("https://www.example.com/blog/post-1")
	require.NoError(t, err)
	assert.True(t, route.Admits(admitted))

	wrongScheme, err := url.Parse("http://www.example.com/blog/post-1")
	require.NoError(t, err)
	assert.False(t, route.Admits(wrongScheme))

	wrongHost, err := url.Parse("https://example.org/blog/post-1")
	require.NoError(t, err)
	assert.False(t, route.Admits(wrongHost))

	wrongPath, err := url.Parse("https://www.example.com/about")
	require.NoError(t, err)
	assert.False(t, route.Admits(wrongPath))
}
