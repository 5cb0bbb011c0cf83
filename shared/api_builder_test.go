package shared

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestApiBuilderUrls(t *testing.T) {
	ab := ApiBuilder{"mastodon.example"}
	assert.Equal(t, "https://mastodon.example/api/v1/apps", ab.Apps())
	assert.Equal(t, "https://mastodon.example/api/v1/timelines/home", ab.HomeTimeline("", 0))
	assert.Equal(t, "https://mastodon.example/api/v1/timelines/home?limit=40&since_id=99", ab.HomeTimeline("99", 40))
	assert.Equal(t, "https://mastodon.example/api/v1/notifications?limit=30", ab.Notifications("", 30))
	assert.Equal(t, "https://mastodon.example/api/v1/statuses/123/favourite", ab.StatusAction("123", "favourite"))
	assert.Equal(t, "wss://mastodon.example/api/v1/streaming", ab.StreamingFallback())
}

func TestNormalizeInstance(t *testing.T) {
	assert.Equal(t, "mastodon.example", NormalizeInstance("https://mastodon.example/"))
	assert.Equal(t, "mastodon.example", NormalizeInstance("Mastodon.Example"))
	assert.Equal(t, "mastodon.example", NormalizeInstance(" http://mastodon.example/web/home"))
}

func TestEllipticalTruncate(t *testing.T) {
	assert.Equal(t, "1 2…", TruncateWithEllipsis("1 2 3", 3))
	assert.Equal(t, "1 2 3", TruncateWithEllipsis("1 2 3", 5))
}
