// Package normalizer turns raw provider text into a well-formed domain.Result.
package normalizer

import (
	"regexp"
	"strings"

	"github.com/kolhesatish/content-app/internal/content/domain"
	"github.com/tidwall/gjson"
)

var (
	openingFence = regexp.MustCompile("^```[A-Za-z0-9_-]*[ \t]*\r?\n?")
	closingFence = regexp.MustCompile("\r?\n?```$")
	tagSplitter  = regexp.MustCompile(`[\s,]+`)
)

// Normalize never fails: output that does not parse into at least one
// variation is replaced with Fallback(req). The bool reports whether the
// fallback was used.
func Normalize(raw string, req domain.Request) (domain.Result, bool) {
	body := StripFences(raw)
	if !gjson.Valid(body) {
		return Fallback(req), true
	}

	entries := gjson.Get(body, "variations")
	if !entries.IsArray() {
		return Fallback(req), true
	}

	var variations []domain.Variation
	entries.ForEach(func(_, entry gjson.Result) bool {
		if v, ok := coerce(entry, req); ok {
			variations = append(variations, v)
		}
		return true
	})
	if len(variations) == 0 {
		return Fallback(req), true
	}

	return domain.Result{Variations: variations}, false
}

// StripFences removes a leading ```lang and trailing ``` around the payload.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = openingFence.ReplaceAllString(s, "")
	s = closingFence.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

func coerce(entry gjson.Result, req domain.Request) (domain.Variation, bool) {
	if !entry.IsObject() {
		return domain.Variation{}, false
	}

	caption := text(entry.Get("caption"))
	if caption == "" {
		return domain.Variation{}, false
	}

	v := domain.Variation{
		Caption:  caption,
		Hashtags: []string{},
		Tag:      firstNonEmpty(text(entry.Get("tag")), text(entry.Get("style")), text(entry.Get("tone")), req.Label()),
	}
	if !req.OmitsHashtags() {
		v.Hashtags = hashtags(entry.Get("hashtags"))
	}
	return v, true
}

// text renders a JSON string, number or bool; anything else is empty.
func text(r gjson.Result) string {
	switch r.Type {
	case gjson.String:
		return strings.TrimSpace(r.Str)
	case gjson.Number, gjson.True, gjson.False:
		return r.Raw
	default:
		return ""
	}
}

// hashtags accepts either an array or a single whitespace/comma separated string.
func hashtags(r gjson.Result) []string {
	out := []string{}

	if r.IsArray() {
		for _, item := range r.Array() {
			if tag := text(item); tag != "" {
				out = append(out, tag)
			}
		}
		return out
	}

	for _, tag := range tagSplitter.Split(text(r), -1) {
		if tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
