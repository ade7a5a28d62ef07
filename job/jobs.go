package job

import (
	"context"
	"time"

	"hud/port/provider_port"
	"hud/usecase/ingest_usecase"
	"hud/usecase/sweep_usecase"
	"hud/utils/logger"
)

// NewRetentionSweepJob deletes feed items past the retention window on a
// fixed interval. Bookmarked items survive the sweep.
func NewRetentionSweepJob(sweep *sweep_usecase.SweepUsecase, interval time.Duration) Job {
	return Job{
		Name:     "retention-sweep",
		Interval: interval,
		Timeout:  5 * time.Minute,
		Run: func(ctx context.Context) error {
			_, err := sweep.Execute(ctx)
			return err
		},
	}
}

// NewScheduledIngestJob runs a full ingestion cycle across every configured
// provider. Provider failures are logged per provider and never abort the
// cycle; only storage failures surface as job errors.
func NewScheduledIngestJob(
	ingest *ingest_usecase.IngestUsecase,
	providers []provider_port.CandidateProviderPort,
	interval, timeout time.Duration,
) Job {
	return Job{
		Name:     "scheduled-ingest",
		Interval: interval,
		Timeout:  timeout,
		Run: func(ctx context.Context) error {
			results := ingest.ExecuteAll(ctx, providers)
			for _, result := range results {
				if result.ProviderErr != nil {
					logger.Logger.WarnContext(ctx, "provider unavailable during scheduled ingest",
						"provider", result.Provider, "error", result.ProviderErr)
					continue
				}
				logger.Logger.InfoContext(ctx, "scheduled ingest finished for provider",
					"provider", result.Provider,
					"fetched", result.TotalFetched,
					"inserted", result.Inserted)
			}
			return nil
		},
	}
}
