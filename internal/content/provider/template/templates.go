package template

import (
	"fmt"

	"github.com/kolhesatish/content-app/internal/content/domain"
)

type renderFunc func(topic, tag string) string

var instagramHashtags = []string{
	"#contentcreator", "#inspiration", "#motivation", "#lifestyle",
	"#growth", "#success", "#mindset", "#tips", "#advice",
}

var linkedInHashtags = []string{
	"#LinkedIn", "#ProfessionalDevelopment", "#Leadership", "#Growth",
	"#Innovation", "#Insights", "#Business", "#Career", "#Networking",
}

var instagramCaptions = map[string]renderFunc{
	domain.ContentTypePost: func(topic, tag string) string {
		return fmt.Sprintf(`✨ %[1]s is such an important topic! Here are some key insights:

📍 First key point about %[1]s
📍 Second important aspect
📍 Third valuable insight

What are your thoughts on this? Share in the comments! 👇

%[2]s #contentcreator #inspiration #motivation #lifestyle #growth`, topic, tag)
	},
	domain.ContentTypeReel: func(topic, tag string) string {
		return fmt.Sprintf(`🎬 Quick tips about %[1]s!

🔥 Save this for later and follow for more!

Tip 1: [Related to %[1]s]
Tip 2: [Key insight]
Tip 3: [Actionable advice]

Try this and let me know how it goes! 💪

%[2]s #reels #tips #viral #fyp #trending`, topic, tag)
	},
	domain.ContentTypeStory: func(topic, _ string) string {
		return fmt.Sprintf(`📖 Quick story about %[1]s...

This changed my perspective completely!

What's your experience with %[1]s? 🤔`, topic)
	},
}

var linkedInPosts = map[string]renderFunc{
	domain.StyleProfessional: func(topic, tag string) string {
		return fmt.Sprintf(`I've been thinking about %[1]s lately, and here's what I've learned:

🔹 First important insight about %[1]s
🔹 How it impacts our daily work
🔹 Practical applications we can implement

The key is to stay curious and keep learning.

What's your experience with %[1]s? I'd love to hear your thoughts in the comments.

%[2]s #ProfessionalDevelopment #Leadership #Growth`, topic, tag)
	},
	domain.StyleStory: func(topic, tag string) string {
		return fmt.Sprintf(`Last week, something happened that completely changed my perspective on %[1]s.

Here's the story:

It started when [context about %[1]s]. I realized that my approach was completely wrong.

The turning point came when [key insight about %[1]s].

Now I understand that [lesson learned].

Three key takeaways:
1. [First lesson]
2. [Second insight]
3. [Action item]

%[1]s isn't just about the technical aspects - it's about [deeper meaning].

What's been your experience with %[1]s? Share your story below.

%[2]s #Lessons #Growth #Experience`, topic, tag)
	},
	domain.StyleInsights: func(topic, tag string) string {
		return fmt.Sprintf(`Here are 5 key insights about %[1]s that every professional should know:

1️⃣ [First insight about %[1]s]
Understanding this changes everything.

2️⃣ [Second key point]
This is often overlooked but crucial.

3️⃣ [Third important aspect]
The data supports this approach.

4️⃣ [Fourth insight]
Most people get this wrong.

5️⃣ [Fifth key takeaway]
This is the game-changer.

%[1]s continues to evolve rapidly. Staying informed is essential.

Which insight resonates most with you?

%[2]s #Insights #Industry #Knowledge`, topic, tag)
	},
	domain.StyleQuestion: func(topic, tag string) string {
		return fmt.Sprintf(`I'm curious about your thoughts on %[1]s.

Here's what I've been wondering:

%[1]s seems to be evolving rapidly, and I've noticed [observation about the topic].

Some questions I have:
• How has %[1]s impacted your work?
• What changes have you seen recently?
• Where do you think this is heading?

From my experience, [personal insight about %[1]s].

But I know there are many different perspectives out there.

What's your take on %[1]s? Drop your thoughts below - I read every comment!

%[2]s #Discussion #Community #Insights`, topic, tag)
	},
}
