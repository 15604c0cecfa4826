package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_VariationCount(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{in: 0, want: DefaultVariations},
		{in: -3, want: DefaultVariations},
		{in: 1, want: 1},
		{in: 7, want: 7},
		{in: 10, want: 10},
		{in: 50, want: MaxVariations},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Options{Variations: tt.in}.VariationCount(), "variations=%d", tt.in)
	}
}

func TestOptions_HasStyle(t *testing.T) {
	o := Options{Styles: []string{"Emojis", "engaging"}}
	assert.True(t, o.HasStyle("emojis"))
	assert.True(t, o.HasStyle("engaging"))
	assert.False(t, o.HasStyle("formal"))
	assert.False(t, Options{}.HasStyle("emojis"))
}

func TestRequest_LabelAndHashtags(t *testing.T) {
	ig := Request{Platform: PlatformInstagram, ContentType: ContentTypeStory}
	assert.Equal(t, "story", ig.Label())
	assert.True(t, ig.OmitsHashtags())

	post := Request{Platform: PlatformInstagram, ContentType: ContentTypePost}
	assert.False(t, post.OmitsHashtags())

	li := Request{Platform: PlatformLinkedIn, Style: StyleStory}
	assert.Equal(t, "story", li.Label())
	assert.False(t, li.OmitsHashtags())
}

func TestTopicHashtag(t *testing.T) {
	assert.Equal(t, "#remotework", TopicHashtag("Remote Work"))
	assert.Equal(t, "#ai", TopicHashtag("  AI\t"))
	assert.Equal(t, "#café", TopicHashtag("Café"))
}
