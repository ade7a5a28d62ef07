package auto_tagger_gateway

import (
	"context"
	"fmt"

	"hud/domain"
	"hud/port/completion_port"
	"hud/utils/logger"
)

const promptTemplate = `Generate 3-5 short, relevant tags for this news story.
Title: %q
Content (first 100 chars): %q
Return only a comma-separated list of tags.`

// AutoTaggerGateway labels items by asking generative providers in fixed
// priority order. Each provider gets exactly one attempt per call; when all
// of them fail the sentinel tag set is returned, never an error.
type AutoTaggerGateway struct {
	providers []completion_port.CompletionPort
}

func NewAutoTaggerGateway(providers ...completion_port.CompletionPort) *AutoTaggerGateway {
	return &AutoTaggerGateway{providers: providers}
}

func (g *AutoTaggerGateway) Tag(ctx context.Context, title string, excerpt string) []string {
	prompt := fmt.Sprintf(promptTemplate, title, domain.ClipExcerpt(excerpt, domain.ExcerptLimit))

	for _, provider := range g.providers {
		raw, err := provider.Complete(ctx, prompt)
		if err != nil {
			logger.Logger.Warn("tagging provider failed", "provider", provider.Name(), "error", err)
			continue
		}

		tags := domain.ParseTagList(raw)
		if len(tags) == 0 {
			logger.Logger.Warn("tagging provider returned no tags", "provider", provider.Name(), "raw", raw)
			continue
		}

		logger.Logger.Info("tags generated", "provider", provider.Name(), "count", len(tags))
		return tags
	}

	logger.Logger.Error("all tagging providers failed, using sentinel tags", "title", title)
	return append([]string(nil), domain.SentinelTags...)
}
