package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTagList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "plain_list", raw: "go,databases,performance", want: []string{"go", "databases", "performance"}},
		{name: "mixed_case_and_spacing", raw: " Go , Web Development ,AI ", want: []string{"go", "web development", "ai"}},
		{name: "empty_entries_dropped", raw: "go,,  ,rust", want: []string{"go", "rust"}},
		{name: "only_separators", raw: " , , ", want: []string{}},
		{name: "empty_string", raw: "", want: []string{}},
		{name: "single_tag", raw: "Kubernetes", want: []string{"kubernetes"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTagList(tt.raw))
		})
	}
}

func TestDedupeTags(t *testing.T) {
	assert.Equal(t, []string{"go", "rust", "ai"}, DedupeTags([]string{"go", "rust", "go", "ai", "rust"}))
	assert.Equal(t, []string{}, DedupeTags(nil))
}

func TestLowercaseAll(t *testing.T) {
	assert.Equal(t, []string{"ai", "webdev"}, LowercaseAll([]string{"AI", "WebDev"}))
}

func TestTagsIntersect(t *testing.T) {
	assert.True(t, TagsIntersect([]string{"go", "compilers"}, []string{"AI", "Go"}))
	assert.False(t, TagsIntersect([]string{"go"}, []string{"rust"}))
	assert.False(t, TagsIntersect(nil, []string{"go"}))
	assert.False(t, TagsIntersect([]string{"go"}, nil))
}

func TestSentinelTagsAreNonEmpty(t *testing.T) {
	assert.NotEmpty(t, SentinelTags)
	assert.Contains(t, SentinelTags, "untagged")
}
