// Package template is an offline provider that renders fixed caption
// templates in the same JSON shape the Gemini prompt asks for.
package template

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kolhesatish/content-app/internal/content/domain"
	"github.com/kolhesatish/content-app/internal/content/provider"
)

const Name = "template"

type Provider struct{}

var _ provider.Provider = Provider{}

func New() Provider {
	return Provider{}
}

func (Provider) Name() string {
	return Name
}

type variation struct {
	Caption  string   `json:"caption"`
	Hashtags []string `json:"hashtags"`
	Style    string   `json:"style"`
}

// Generate renders the template for the requested content type or style,
// followed by the remaining templates of that platform, up to req.Variations.
// Instagram has one template per content type, so it yields one variation.
func (Provider) Generate(ctx context.Context, req provider.Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	topic := strings.TrimSpace(req.Topic)
	tag := domain.TopicHashtag(topic)

	var out []variation
	switch req.Platform {
	case domain.PlatformInstagram:
		out = []variation{instagram(topic, tag, req.ContentType)}
	case domain.PlatformLinkedIn:
		out = linkedIn(topic, tag, req.Style, req.Variations)
	default:
		return "", fmt.Errorf("unsupported platform %q", req.Platform)
	}

	body, err := json.Marshal(map[string][]variation{"variations": out})
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func instagram(topic, tag, contentType string) variation {
	render, ok := instagramCaptions[contentType]
	if !ok {
		contentType = domain.ContentTypePost
		render = instagramCaptions[contentType]
	}

	hashtags := []string{}
	if contentType != domain.ContentTypeStory {
		hashtags = append([]string{tag}, instagramHashtags...)
	}

	return variation{Caption: render(topic, tag), Hashtags: hashtags, Style: contentType}
}

func linkedIn(topic, tag, style string, limit int) []variation {
	if _, ok := linkedInPosts[style]; !ok {
		style = domain.StyleProfessional
	}

	order := []string{style}
	for _, s := range domain.LinkedInStyles {
		if s != style {
			order = append(order, s)
		}
	}
	if limit > 0 && limit < len(order) {
		order = order[:limit]
	}

	hashtags := append([]string{tag}, linkedInHashtags...)
	out := make([]variation, 0, len(order))
	for _, s := range order {
		out = append(out, variation{
			Caption:  linkedInPosts[s](topic, tag),
			Hashtags: hashtags,
			Style:    s,
		})
	}
	return out
}
