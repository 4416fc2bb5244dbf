package ports

import (
	"context"

	"github.com/finmetrics/credit-gateway/internal/core/domain"
)

// SubmissionService is the inbound contract for the submission
// workflow. Submit returns the committed outcome of the cycle, a
// *domain.MissingFieldError when validation blocks the submission, or
// a domain.ErrTemporary-kind error when the scoring call fails.
type SubmissionService interface {
	Submit(ctx context.Context, profile domain.Profile) (*domain.ScoreOutcome, error)
}

// ApplicationReader is the inbound read model for the current
// application state.
type ApplicationReader interface {
	Snapshot() domain.ApplicationState
	UpdateDraft(fields map[string]string) domain.Profile
}
