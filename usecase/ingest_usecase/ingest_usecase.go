package ingest_usecase

import (
	"context"
	"time"

	"hud/domain"
	"hud/metrics"
	"hud/port/feed_item_port"
	"hud/port/provider_port"
	"hud/port/tagging_port"
	"hud/utils/errors"
	"hud/utils/logger"

	"golang.org/x/sync/errgroup"
)

// IngestResult reports one provider ingestion run. ProviderErr is set when
// the provider itself was unavailable; that is not fatal to the caller, the
// run just contributes zero candidates.
type IngestResult struct {
	Provider     string
	TotalFetched int
	Inserted     int
	ProviderErr  error
}

// IngestUsecase runs the ingestion pipeline: fetch candidates from a
// provider, dedup against storage by canonical URL, tag, persist. Candidates
// are processed sequentially in adapter-yield order; only storage failures
// abort a run.
type IngestUsecase struct {
	feedItems feed_item_port.FeedItemPort
	tagger    tagging_port.TaggingPort
}

func NewIngestUsecase(feedItems feed_item_port.FeedItemPort, tagger tagging_port.TaggingPort) *IngestUsecase {
	return &IngestUsecase{feedItems: feedItems, tagger: tagger}
}

func (u *IngestUsecase) Execute(ctx context.Context, provider provider_port.CandidateProviderPort) (*IngestResult, error) {
	start := time.Now()
	result := &IngestResult{Provider: provider.Name()}

	candidates, err := provider.FetchCandidates(ctx)
	if err != nil {
		// Total provider failure: zero candidates, not fatal
		logger.Logger.Error("provider fetch failed", "provider", provider.Name(), "error", err)
		metrics.ProviderFetchFailures.WithLabelValues(provider.Name()).Inc()
		result.ProviderErr = err
		return result, nil
	}

	result.TotalFetched = len(candidates)

	for _, candidate := range candidates {
		if !candidate.Valid() {
			metrics.CandidatesSkipped.WithLabelValues(provider.Name(), "malformed").Inc()
			continue
		}

		exists, err := u.feedItems.ExistsByURL(ctx, candidateURLs(candidate))
		if err != nil {
			return result, errors.DatabaseError("dedup check failed", err, map[string]interface{}{
				"provider": provider.Name(),
				"url":      candidate.URL,
			})
		}
		if exists {
			metrics.CandidatesSkipped.WithLabelValues(provider.Name(), "duplicate").Inc()
			continue
		}

		tags := u.tagger.Tag(ctx, candidate.Title, candidate.Excerpt)
		tags = domain.DedupeTags(domain.LowercaseAll(append(tags, candidate.ProviderTags...)))

		item := &domain.FeedItem{
			Title:       candidate.Title,
			URL:         candidate.URL,
			Source:      candidate.Source,
			Popularity:  candidate.Popularity,
			Tags:        tags,
			PublishedAt: candidate.PublishedAt,
			Metadata:    candidate.Metadata,
		}

		inserted, err := u.feedItems.Create(ctx, item)
		if err != nil {
			return result, errors.DatabaseError("feed item insert failed", err, map[string]interface{}{
				"provider": provider.Name(),
				"url":      candidate.URL,
			})
		}
		if !inserted {
			// Lost the race to a concurrent run; equivalent to a dedup skip
			metrics.CandidatesSkipped.WithLabelValues(provider.Name(), "duplicate").Inc()
			continue
		}

		result.Inserted++
		metrics.ItemsInserted.WithLabelValues(provider.Name()).Inc()
	}

	metrics.IngestDuration.WithLabelValues(provider.Name()).Observe(time.Since(start).Seconds())
	logger.Logger.Info("ingestion run completed",
		"provider", provider.Name(),
		"fetched", result.TotalFetched,
		"inserted", result.Inserted,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return result, nil
}

// ExecuteAll ingests from every provider concurrently. Each provider runs as
// an independent task; one provider's storage failure does not cancel the
// others, it is reported in that provider's result.
func (u *IngestUsecase) ExecuteAll(ctx context.Context, providers []provider_port.CandidateProviderPort) []*IngestResult {
	results := make([]*IngestResult, len(providers))

	var group errgroup.Group
	for i, provider := range providers {
		group.Go(func() error {
			result, err := u.Execute(ctx, provider)
			if err != nil {
				logger.Logger.Error("ingestion run failed", "provider", provider.Name(), "error", err)
				result.ProviderErr = err
			}
			results[i] = result
			return nil
		})
	}
	// Workers never return errors; Wait is just a join
	_ = group.Wait()

	return results
}

func candidateURLs(candidate *domain.Candidate) []string {
	urls := []string{candidate.URL}
	if candidate.AlternateURL != "" && candidate.AlternateURL != candidate.URL {
		urls = append(urls, candidate.AlternateURL)
	}
	return urls
}
