package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/finmetrics/credit-gateway/internal/core/domain"
	"github.com/finmetrics/credit-gateway/internal/core/ports"
)

const defaultEnrichmentTimeout = 15 * time.Second

// SubmissionOrchestrator sequences validation, the mandatory scoring
// call, and the best-effort enrichment call for one application slot.
// It is the only writer of the state store.
type SubmissionOrchestrator struct {
	scorer     ports.ScoreService
	similarity ports.SimilarityService
	store      ports.StateStore
	metrics    ports.MetricsRecorder
	logger     *slog.Logger

	enrichmentTimeout time.Duration

	mu sync.Mutex
	wg sync.WaitGroup
}

type Options struct {
	EnrichmentTimeout time.Duration
	Metrics           ports.MetricsRecorder
}

func NewSubmissionOrchestrator(
	scorer ports.ScoreService,
	similarity ports.SimilarityService,
	store ports.StateStore,
	logger *slog.Logger,
	options Options,
) *SubmissionOrchestrator {
	enrichmentTimeout := options.EnrichmentTimeout
	if enrichmentTimeout <= 0 {
		enrichmentTimeout = defaultEnrichmentTimeout
	}
	metrics := options.Metrics
	if metrics == nil {
		metrics = nopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SubmissionOrchestrator{
		scorer:            scorer,
		similarity:        similarity,
		store:             store,
		metrics:           metrics,
		logger:            logger,
		enrichmentTimeout: enrichmentTimeout,
	}
}

// Submit runs one submission cycle over an immutable snapshot of the
// profile. The outcome and its anomaly signal are committed before the
// method returns; an approved cycle then continues asynchronously into
// enrichment. A scoring failure leaves the previously committed state
// untouched.
func (uc *SubmissionOrchestrator) Submit(ctx context.Context, profile domain.Profile) (*domain.ScoreOutcome, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	snapshot := profile.Clone()
	log := uc.logger.With("submission_id", uuid.NewString())

	token := uc.store.BeginCycle(snapshot)
	start := time.Now()

	outcome, err := uc.scorer.Submit(ctx, snapshot)
	if err != nil {
		uc.store.AbortCycle(token)
		uc.metrics.RecordSubmission("transport_error", time.Since(start))
		log.Error("scoring call failed", "error", err)
		return nil, fmt.Errorf("score profile: %w", err)
	}

	uc.store.CommitOutcome(token, outcome)
	uc.metrics.RecordSubmission(string(outcome.Decision), time.Since(start))

	if outcome.Terminal() {
		log.Info("application closed without enrichment",
			"decision", outcome.Decision,
			"reason", outcome.Reason,
		)
		return outcome, nil
	}

	log.Info("score committed",
		"decision", outcome.Decision,
		"score", outcome.Score,
	)
	if outcome.Anomaly != nil && outcome.Anomaly.HighRisk() {
		uc.metrics.RecordHighRisk()
		log.Warn("high anomaly score detected", "anomaly", float64(*outcome.Anomaly))
	}

	uc.wg.Add(1)
	go uc.enrich(token, snapshot.EnrichmentQuery(), log)

	return outcome, nil
}

// enrich runs detached from the submitting request: the score is
// already visible and must not wait on this call.
func (uc *SubmissionOrchestrator) enrich(token uint64, query string, log *slog.Logger) {
	defer uc.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), uc.enrichmentTimeout)
	defer cancel()

	products := uc.similarity.FindSimilar(ctx, query)
	if !uc.store.MergeProducts(token, products) {
		uc.metrics.RecordStaleEnrichmentDrop()
		log.Info("stale enrichment result dropped", "cycle", token)
		return
	}
	uc.metrics.RecordEnrichment(len(products))
	log.Info("enrichment merged", "cycle", token, "products", len(products))
}

// Drain blocks until in-flight enrichment calls finish. Used on
// shutdown.
func (uc *SubmissionOrchestrator) Drain() {
	uc.wg.Wait()
}

type nopMetrics struct{}

func (nopMetrics) RecordSubmission(string, time.Duration) {}
func (nopMetrics) RecordEnrichment(int)                   {}
func (nopMetrics) RecordStaleEnrichmentDrop()             {}
func (nopMetrics) RecordHighRisk()                        {}
