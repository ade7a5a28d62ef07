package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ItemsInserted counts feed items persisted per provider.
	ItemsInserted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hud_feed_items_inserted_total",
		Help: "Number of feed items inserted by the ingestion pipeline.",
	}, []string{"provider"})

	// CandidatesSkipped counts candidates dropped before insert.
	CandidatesSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hud_ingest_candidates_skipped_total",
		Help: "Number of candidates skipped during ingestion.",
	}, []string{"provider", "reason"})

	// ProviderFetchFailures counts total provider fetch failures.
	ProviderFetchFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hud_provider_fetch_failures_total",
		Help: "Number of total provider fetch failures.",
	}, []string{"provider"})

	// IngestDuration observes wall time of one provider ingestion run.
	IngestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hud_ingest_duration_seconds",
		Help:    "Duration of a single provider ingestion run.",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
	}, []string{"provider"})

	// ItemsSwept counts feed items removed by the retention sweeper.
	ItemsSwept = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hud_feed_items_swept_total",
		Help: "Number of expired feed items deleted by the sweeper.",
	})

	// FeedCacheHits counts feed query cache hits and misses.
	FeedCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hud_feed_cache_requests_total",
		Help: "Feed query cache lookups by outcome.",
	}, []string{"outcome"})
)
