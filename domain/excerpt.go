package domain

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// ExcerptLimit is the maximum number of characters of source content handed
// to the tagger.
const ExcerptLimit = 100

var excerptPolicy = bluemonday.StrictPolicy()

// CleanExcerpt strips markup and entities from provider-supplied text.
// HN story text and Reddit self-text arrive as HTML fragments.
func CleanExcerpt(raw string) string {
	cleaned := excerptPolicy.Sanitize(raw)
	cleaned = html.UnescapeString(cleaned)
	return strings.TrimSpace(cleaned)
}

// TruncateExcerpt caps text at limit runes, appending "..." when truncated.
func TruncateExcerpt(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// ClipExcerpt caps text at limit runes without an ellipsis marker.
func ClipExcerpt(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
