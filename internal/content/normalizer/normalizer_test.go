package normalizer

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/kolhesatish/content-app/internal/content/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	instagramPost  = domain.Request{Platform: domain.PlatformInstagram, ContentType: domain.ContentTypePost, Topic: "Remote Work"}
	instagramStory = domain.Request{Platform: domain.PlatformInstagram, ContentType: domain.ContentTypeStory, Topic: "Remote Work"}
	linkedInQ      = domain.Request{Platform: domain.PlatformLinkedIn, Style: domain.StyleQuestion, Topic: "Remote Work"}
)

const threeVariations = `{
  "variations": [
    {"caption": "First", "hashtags": ["#a", "#b"], "style": "playful"},
    {"caption": "Second", "hashtags": ["#c"], "tone": "calm"},
    {"caption": "Third", "hashtags": [], "tag": "bold"}
  ]
}`

func TestNormalize_WellFormed(t *testing.T) {
	want := domain.Result{Variations: []domain.Variation{
		{Caption: "First", Hashtags: []string{"#a", "#b"}, Tag: "playful"},
		{Caption: "Second", Hashtags: []string{"#c"}, Tag: "calm"},
		{Caption: "Third", Hashtags: []string{}, Tag: "bold"},
	}}

	inputs := map[string]string{
		"bare":          threeVariations,
		"json fence":    "```json\n" + threeVariations + "\n```",
		"plain fence":   "```\n" + threeVariations + "\n```",
		"padded fence":  "  \n```JSON\r\n" + threeVariations + "\r\n```  \n",
		"inline fences": "```" + threeVariations + "```",
	}

	for name, raw := range inputs {
		t.Run(name, func(t *testing.T) {
			got, fellBack := Normalize(raw, instagramPost)

			assert.False(t, fellBack)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNormalize_Coercion(t *testing.T) {
	raw := `{"variations": [
		{"caption": "  spaced  ", "hashtags": "#one #two,#three"},
		{"caption": 42, "hashtags": ["#x", 7, null, ""]},
		{"caption": "", "hashtags": ["#dropped"]},
		{"hashtags": ["#no-caption"]},
		"loose string entry"
	]}`

	got, fellBack := Normalize(raw, linkedInQ)
	require.False(t, fellBack)

	want := domain.Result{Variations: []domain.Variation{
		{Caption: "spaced", Hashtags: []string{"#one", "#two", "#three"}, Tag: domain.StyleQuestion},
		{Caption: "42", Hashtags: []string{"#x", "7"}, Tag: domain.StyleQuestion},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
	}
}

func TestNormalize_StoryDropsHashtags(t *testing.T) {
	got, fellBack := Normalize(threeVariations, instagramStory)
	require.False(t, fellBack)
	require.Len(t, got.Variations, 3)
	for _, v := range got.Variations {
		assert.Empty(t, v.Hashtags)
		assert.NotNil(t, v.Hashtags)
	}
}

func TestNormalize_Fallback(t *testing.T) {
	cases := map[string]string{
		"not json":          "not json at all",
		"empty":             "",
		"empty variations":  `{"variations": []}`,
		"missing key":       `{"items": [{"caption": "x"}]}`,
		"no usable entries": `{"variations": [{"caption": ""}]}`,
		"truncated":         `{"variations": [{"caption": "cut off`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			got, fellBack := Normalize(raw, instagramPost)

			assert.True(t, fellBack)
			require.Len(t, got.Variations, 2)
			for _, v := range got.Variations {
				assert.Contains(t, v.Caption, "Remote Work")
				assert.Contains(t, v.Hashtags, "#remotework")
			}
		})
	}
}

func TestFallback(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		if diff := cmp.Diff(Fallback(linkedInQ), Fallback(linkedInQ)); diff != "" {
			t.Errorf("Fallback() not deterministic:\n%s", diff)
		}
	})

	t.Run("instagram story has no hashtags", func(t *testing.T) {
		got := Fallback(instagramStory)
		require.Len(t, got.Variations, 2)
		for _, v := range got.Variations {
			assert.Empty(t, v.Hashtags)
			assert.True(t, strings.Contains(v.Caption, "Remote Work"))
		}
	})

	t.Run("linkedin keeps style label", func(t *testing.T) {
		got := Fallback(linkedInQ)
		require.Len(t, got.Variations, 2)
		assert.Equal(t, domain.StyleQuestion, got.Variations[0].Tag)
		assert.Equal(t, []string{"#remotework", "#ProfessionalDevelopment", "#Leadership", "#Growth"}, got.Variations[0].Hashtags)
		assert.Contains(t, got.Variations[1].Caption, "Remote Work")
	})
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, StripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, StripFences("  {\"a\":1}  "))
	assert.Equal(t, "text", StripFences("```\ntext```"))
}
