package webhooks_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_PostTiming_Flags(t *testing.T) {
	assert.True(t, PostTimingOnCreation.PostsOnCreation())
	assert.False(t, PostTimingOnCreation.PostsBeforeStream())

	assert.False(t, PostTimingBeforeStream.PostsOnCreation())
	assert.True(t, PostTimingBeforeStream.PostsBeforeStream())

	assert.True(t, PostTimingBoth.PostsOnCreation())
	assert.True(t, PostTimingBoth.PostsBeforeStream())
}

func Test_Validate_RequiresNameURLAndKnownTiming(t *testing.T) {
	webhook := DiscordWebhook{
		Name:       "announcements",
		URL:        "https://discord.com/api/webhooks/123/abc",
		PostTiming: PostTimingOnCreation,
	}
	assert.NoError(t, webhook.Validate())

	webhook.Name = ""
	assert.Error(t, webhook.Validate())

	webhook.Name = "announcements"
	webhook.PostTiming = PostTiming("hourly")
	assert.Error(t, webhook.Validate())

	webhook.PostTiming = PostTimingBoth
	webhook.MinutesBefore = -5
	assert.Error(t, webhook.Validate())
}
