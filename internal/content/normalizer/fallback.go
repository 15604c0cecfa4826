package normalizer

import (
	"fmt"

	"github.com/kolhesatish/content-app/internal/content/domain"
)

// Fallback returns exactly two variations derived only from req.
func Fallback(req domain.Request) domain.Result {
	topic := req.Topic

	if req.Platform == domain.PlatformLinkedIn {
		tags := []string{domain.TopicHashtag(topic), "#ProfessionalDevelopment", "#Leadership", "#Growth"}
		return domain.Result{Variations: []domain.Variation{
			{
				Caption: fmt.Sprintf("I've been thinking about %s lately, and here's what I've learned: "+
					"the key is to stay curious and keep learning.\n\n"+
					"What's your experience with %s? I'd love to hear your thoughts in the comments.", topic, topic),
				Hashtags: tags,
				Tag:      firstNonEmpty(req.Style, domain.StyleProfessional),
			},
			{
				Caption: fmt.Sprintf("Here are a few insights about %s that every professional should know.\n\n"+
					"%s continues to evolve rapidly. Staying informed is essential.\n\n"+
					"Which insight resonates most with you?", topic, topic),
				Hashtags: append([]string(nil), tags...),
				Tag:      domain.StyleInsights,
			},
		}}
	}

	var tags []string
	if !req.OmitsHashtags() {
		tags = []string{domain.TopicHashtag(topic), "#contentcreator", "#inspiration", "#motivation", "#growth"}
	}
	return domain.Result{Variations: []domain.Variation{
		{
			Caption:  fmt.Sprintf("✨ %s is such an important topic! What are your thoughts? Share in the comments! 👇", topic),
			Hashtags: hashtagsOrEmpty(tags),
			Tag:      "engaging",
		},
		{
			Caption:  fmt.Sprintf("📍 Everything you need to know about %s. Save this for later and follow for more!", topic),
			Hashtags: hashtagsOrEmpty(tags),
			Tag:      "informative",
		},
	}}
}

func hashtagsOrEmpty(tags []string) []string {
	return append([]string{}, tags...)
}
