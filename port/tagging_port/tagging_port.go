package tagging_port

import "context"

//go:generate go run go.uber.org/mock/mockgen -source=tagging_port.go -destination=../../mocks/mock_tagging_port.go -package=mocks

// TaggingPort produces a small set of normalized lowercase tags for an item.
// Implementations never fail: exhausting every provider yields the sentinel
// tag set instead of an error.
type TaggingPort interface {
	Tag(ctx context.Context, title string, excerpt string) []string
}
