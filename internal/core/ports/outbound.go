package ports

import (
	"context"
	"time"

	"github.com/finmetrics/credit-gateway/internal/core/domain"
)

// ScoreService submits a validated profile to the scoring endpoint and
// returns the classified outcome. Transport-level failures (network
// error, non-2xx status, malformed body) surface as errors of the
// domain.ErrTemporary kind.
type ScoreService interface {
	Submit(ctx context.Context, profile domain.Profile) (*domain.ScoreOutcome, error)
}

// SimilarityService looks up products semantically close to a
// descriptive query. Failures are swallowed at this boundary: the
// result is an empty slice, never an error.
type SimilarityService interface {
	FindSimilar(ctx context.Context, query string) []domain.RecommendedProduct
}

// StateStore is the single-writer state machine behind the application
// view. Every mutating call after BeginCycle carries the cycle token it
// was issued; calls with a superseded token are dropped and report
// false.
type StateStore interface {
	Snapshot() domain.ApplicationState
	UpdateDraft(fields map[string]string) domain.Profile
	BeginCycle(profile domain.Profile) uint64
	AbortCycle(token uint64)
	CommitOutcome(token uint64, outcome *domain.ScoreOutcome) bool
	MergeProducts(token uint64, products []domain.RecommendedProduct) bool
}

// MetricsRecorder receives workflow observations from the orchestrator.
type MetricsRecorder interface {
	RecordSubmission(result string, duration time.Duration)
	RecordEnrichment(productCount int)
	RecordStaleEnrichmentDrop()
	RecordHighRisk()
}
