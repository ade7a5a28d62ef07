package domain

import "strings"

// SentinelTags is stored when every tagging provider failed. It is never
// empty so a persisted item always carries at least one tag.
var SentinelTags = []string{"untagged", "error"}

// ParseTagList splits a raw comma-separated tagger response into normalized
// tags: trimmed, lowercased, empties dropped.
func ParseTagList(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tag := strings.ToLower(strings.TrimSpace(p))
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// DedupeTags removes duplicates while preserving first-seen order.
func DedupeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// LowercaseAll returns a lowercased copy of the given strings. Focus areas
// and tags compare case-insensitively.
func LowercaseAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.ToLower(v))
	}
	return out
}

// TagsIntersect reports whether any tag appears in the focus-area set.
func TagsIntersect(tags, focusAreas []string) bool {
	set := make(map[string]struct{}, len(focusAreas))
	for _, f := range focusAreas {
		set[strings.ToLower(f)] = struct{}{}
	}
	for _, t := range tags {
		if _, ok := set[strings.ToLower(t)]; ok {
			return true
		}
	}
	return false
}
