// Package prompt builds the provider prompts for each platform.
package prompt

import (
	"fmt"
	"strings"

	"github.com/kolhesatish/content-app/internal/content/domain"
)

const jsonInstruction = ` Return ONLY valid JSON without any markdown formatting. Use this exact structure:
{
  "variations": [
    {
      "caption": "%s",
      "hashtags": %s,
      "%s": "%s"
    }
  ]
}`

var instagramGuidance = map[string]string{
	domain.ContentTypePost: "Create Instagram post captions that users can copy and paste directly. " +
		"Each variation should include a captivating caption (2-3 sentences) that encourages engagement, " +
		"relevant hashtags (8-12) for better reach, and a specific content style approach. " +
		"Make the captions ready to use for Instagram posts.",
	domain.ContentTypeReel: "Create Instagram reel content that users can use to create engaging videos. " +
		"Each variation should include an attention-grabbing hook for the first 3 seconds, " +
		"a detailed script outline for 15-30 seconds of video content, " +
		"a clear call-to-action to boost engagement, and trending hashtags for maximum reach.",
	domain.ContentTypeStory: "Create Instagram story content that users can use for their 24-hour stories. " +
		"Each variation should include engaging story text that works well as overlay text, " +
		"interactive elements suggestions, and creative ideas. " +
		"Do NOT include hashtags for stories as they're not commonly used.",
}

// Build returns the prompt for req's platform.
func Build(req domain.Request) string {
	if req.Platform == domain.PlatformLinkedIn {
		return LinkedIn(req.Topic, req.Style, req.Options)
	}
	return Instagram(req.Topic, req.ContentType, req.Options)
}

func Instagram(topic, contentType string, opts domain.Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d different variations of Instagram %s content about %q.", opts.VariationCount(), contentType, topic)
	fmt.Fprintf(&b, " This content will be used for Instagram %ss to engage with followers and grow audience.", contentType)

	if guidance, ok := instagramGuidance[contentType]; ok {
		b.WriteString(" ")
		b.WriteString(guidance)
	}
	if opts.HasStyle("emojis") {
		b.WriteString(" Use relevant emojis to make it more engaging.")
	}
	if opts.HasStyle("engaging") {
		b.WriteString(" Make it highly engaging and shareable.")
	}

	hashtags := `["#hashtag1", "#hashtag2"]`
	if contentType == domain.ContentTypeStory {
		hashtags = "[]"
	}
	fmt.Fprintf(&b, jsonInstruction, "Your caption text here", hashtags, "style", "describe the style used")

	return b.String()
}

func LinkedIn(topic, style string, opts domain.Options) string {
	if style == "" {
		style = domain.StyleProfessional
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d different variations of professional LinkedIn content about %q in %s style.", opts.VariationCount(), topic, style)
	b.WriteString(" This content will be used for LinkedIn posts to build professional network and establish thought leadership.")
	b.WriteString(" Create LinkedIn posts that users can copy and paste to build their professional presence. " +
		"Each variation should include a compelling post (2-3 paragraphs) that establishes thought leadership, " +
		"relevant professional hashtags (5-8) for networking reach, " +
		"and an engagement approach that encourages meaningful discussions.")
	b.WriteString(" Make the content suitable for professional networking, career development, and industry discussions.")
	if opts.HasStyle("emojis") {
		b.WriteString(" Use a few relevant emojis to structure the post.")
	}

	fmt.Fprintf(&b, jsonInstruction, "Your professional post content here", `["#professional", "#industry"]`, "tone", "describe the tone/approach used")

	return b.String()
}
