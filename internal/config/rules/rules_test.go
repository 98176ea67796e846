package rules

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRules = `
[routes]
root_urls = ["https://example.com/"]
follow_robots_exclusion_protocol = false

[routes.hosts]
acceptable = [{ value = "example.com" }, { pattern = "*.example.com" }]
unacceptable = [{ value = "api.example.com" }]

[routes.schemes]
acceptable = ["https"]

[routes.paths]
acceptable = [{ pattern = "/blog/*" }]

[routes.ports]
acceptable = [{ value = "443" }]

[routes.methods]
acceptable = ["get", "head"]

[polling]
proxy = "http://proxy.local:8080"
user_agent = "wayfarerbot/0.1"

[polling.depth]
acceptable = true
max_depth = 3

[polling.redirections]
acceptable = true
max_redirects = 4

[polling.time]
min_sleep_between_requests_ms = 1000
max_sleep_between_requests_ms = 2000
request_timeout_ms = 5000
`

func writeTempRules(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadRulesParsesAllDimensions(t *testing.T) {
	path := writeTempRules(t, sampleRules)

	loaded, err := LoadRules(path)
	require.NoError(t, err)

	require.Len(t, loaded.Route.RootURLs, 1)
	assert.Equal(t, "https://example.com/", loaded.Route.RootURLs[0].String())
	assert.False(t, loaded.Route.FollowRobotsExclusionProtocol)

	assert.True(t, loaded.Route.Hosts.Matches("example.com"))
	assert.True(t, loaded.Route.Hosts.Matches("blog.example.com"))
	assert.False(t, loaded.Route.Hosts.Matches("api.example.com"))

	assert.True(t, loaded.Route.Schemes.Matches("https"))
	assert.False(t, loaded.Route.Schemes.Matches("http"))

	assert.True(t, loaded.Route.Paths.Matches("/blog/post-1"))
	assert.False(t, loaded.Route.Paths.Matches("/about"))

	assert.True(t, loaded.Route.Ports.Matches(443))
	assert.False(t, loaded.Route.Ports.Matches(80))

	assert.True(t, loaded.Route.Methods.Matches("get"))
	assert.False(t, loaded.Route.Methods.Matches("post"))

	assert.Equal(t, uint16(3), loaded.Polling.Depth.MaxDepth())
	assert.Equal(t, uint16(4), loaded.Polling.Redirections.MaxRedirects())
	assert.Equal(t, "http://proxy.local:8080", loaded.Polling.Proxy)
	assert.Equal(t, "wayfarerbot/0.1", loaded.Polling.UserAgent)

	d := loaded.Polling.Time.RandomSleepBetweenRequests()
	assert.GreaterOrEqual(t, d, 1000*time.Millisecond)
	assert.LessOrEqual(t, d, 2000*time.Millisecond)
}

func TestLoadRulesDefaultsWhenSectionsMissing(t *testing.T) {
	path := writeTempRules(t, "[routes]\nroot_urls = []\n")

	loaded, err := LoadRules(path)
	require.NoError(t, err)

	assert.Empty(t, loaded.Route.RootURLs)
	assert.True(t, loaded.Route.FollowRobotsExclusionProtocol)
	assert.True(t, loaded.Route.Hosts.Matches("anything.example"))
	assert.Equal(t, uint16(7), loaded.Polling.Depth.MaxDepth())
}
