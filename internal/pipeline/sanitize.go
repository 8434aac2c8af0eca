package pipeline

import (
	"regexp"
	"strings"
)

// Tags that survive sanitization. Matching is case-insensitive and ignores
// the closing slash, so </B> is as allowed as <b>.
var allowedTags = map[string]bool{
	"b": true, "i": true, "strong": true, "em": true,
	"br": true, "ul": true, "li": true, "p": true,
	"a": true, "span": true,
	"h1": true, "h2": true, "h3": true,
	"div": true, "img": true, "hr": true,
}

var (
	tagPattern     = regexp.MustCompile(`<[^>]*>`)
	tagNamePattern = regexp.MustCompile(`^</?\s*([a-zA-Z][a-zA-Z0-9]*)`)
)

// SanitizeHTML strips markup from free text, keeping only allow-listed tags.
// Disallowed tags are deleted, their inner text stays. Entities are left
// untouched in both directions, which keeps the function idempotent.
func SanitizeHTML(text string) string {
	if isMissing(text) {
		return ""
	}

	return tagPattern.ReplaceAllStringFunc(text, func(tag string) string {
		m := tagNamePattern.FindStringSubmatch(tag)
		if m == nil {
			return ""
		}
		if allowedTags[strings.ToLower(m[1])] {
			return tag
		}
		return ""
	})
}
