package domain

//go:generate mockgen -destination=../../mocks/mock_generation_repository.go -package=mocks github.com/kolhesatish/content-app/internal/content/domain GenerationRepository

import (
	"context"
	"strings"
	"time"
	"unicode"
)

type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformLinkedIn  Platform = "linkedin"
)

// Instagram content types.
const (
	ContentTypePost  = "post"
	ContentTypeReel  = "reel"
	ContentTypeStory = "story"
)

// LinkedIn post styles.
const (
	StyleProfessional = "professional"
	StyleStory        = "story"
	StyleInsights     = "insights"
	StyleQuestion     = "question"
)

const (
	DefaultVariations = 5
	MaxVariations     = 10
)

var (
	InstagramContentTypes = []string{ContentTypePost, ContentTypeReel, ContentTypeStory}
	LinkedInStyles        = []string{StyleProfessional, StyleStory, StyleInsights, StyleQuestion}
)

type Options struct {
	Styles     []string `json:"styles,omitempty"`
	Variations int      `json:"variations,omitempty"`
}

// VariationCount returns the requested number of variations clamped to
// [1, MaxVariations], or DefaultVariations when unset.
func (o Options) VariationCount() int {
	switch {
	case o.Variations <= 0:
		return DefaultVariations
	case o.Variations > MaxVariations:
		return MaxVariations
	default:
		return o.Variations
	}
}

func (o Options) HasStyle(name string) bool {
	for _, s := range o.Styles {
		if strings.EqualFold(s, name) {
			return true
		}
	}
	return false
}

type Request struct {
	AccountID   string
	Platform    Platform
	ContentType string
	Style       string
	Topic       string
	Options     Options
}

// Label is the style label used when a variation carries no tag of its own.
func (r Request) Label() string {
	if r.Platform == PlatformLinkedIn {
		return r.Style
	}
	return r.ContentType
}

// OmitsHashtags reports whether the request's content type carries no hashtags.
func (r Request) OmitsHashtags() bool {
	return r.Platform == PlatformInstagram && r.ContentType == ContentTypeStory
}

type Variation struct {
	Caption  string   `json:"caption"`
	Hashtags []string `json:"hashtags"`
	Tag      string   `json:"tag"`
}

type Result struct {
	Variations []Variation `json:"variations"`
}

type GenerationRecord struct {
	ID          string
	UserID      string
	Platform    Platform
	ContentType string
	Topic       string
	Content     Result
	CreatedAt   time.Time
}

type GenerationRepository interface {
	Insert(ctx context.Context, record *GenerationRecord) error
	ListByUser(ctx context.Context, userID string, limit int) ([]GenerationRecord, error)
}

// TopicHashtag turns a topic into a single lowercase hashtag, e.g.
// "Remote Work" becomes "#remotework".
func TopicHashtag(topic string) string {
	var b strings.Builder
	b.WriteByte('#')
	for _, r := range strings.ToLower(topic) {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
