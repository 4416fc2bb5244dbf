// Package memstore holds the application state machine in memory.
// Nothing here survives a process restart; that is by contract of the
// workflow, not a missing feature.
package memstore

import (
	"sync"

	"github.com/finmetrics/credit-gateway/internal/core/domain"
)

// Store keeps the latest committed application state together with the
// token of the submission cycle currently allowed to mutate it.
// Mutations carrying a superseded token are dropped.
type Store struct {
	mu    sync.RWMutex
	cycle uint64
	state domain.ApplicationState
}

func New() *Store {
	return &Store{
		state: domain.ApplicationState{
			Draft:    domain.DefaultProfile(),
			Phase:    domain.PhaseIdle,
			Products: []domain.RecommendedProduct{},
		},
	}
}

// Snapshot returns an independent copy safe to hand to the view layer.
func (s *Store) Snapshot() domain.ApplicationState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := s.state
	out.Draft = s.state.Draft.Clone()
	out.Products = append([]domain.RecommendedProduct(nil), s.state.Products...)
	if s.state.Outcome != nil {
		outcome := *s.state.Outcome
		outcome.Recommendations = append([]string(nil), s.state.Outcome.Recommendations...)
		if s.state.Outcome.Anomaly != nil {
			anomaly := *s.state.Outcome.Anomaly
			outcome.Anomaly = &anomaly
		}
		out.Outcome = &outcome
	}
	return out
}

// UpdateDraft merges recognized fields into the current draft and
// returns the updated copy. Unrecognized keys are ignored.
func (s *Store) UpdateDraft(fields map[string]string) domain.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range domain.FieldOrder {
		if v, ok := fields[key]; ok {
			s.state.Draft[key] = v
		}
	}
	return s.state.Draft.Clone()
}

// BeginCycle supersedes any in-flight cycle, replaces the draft with
// the submitted snapshot, and issues the new cycle token. Previously
// committed results stay visible until the new cycle commits, so a
// failed scoring call cannot leave a partial update behind.
func (s *Store) BeginCycle(profile domain.Profile) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cycle++
	s.state.Draft = profile.Clone()
	s.state.Phase = domain.PhaseScoring
	return s.cycle
}

// AbortCycle ends a cycle whose scoring call failed. All committed
// data is retained untouched.
func (s *Store) AbortCycle(token uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.cycle {
		return
	}
	s.state.Phase = domain.PhaseIdle
}

// CommitOutcome installs the classified outcome of the given cycle,
// clears the previous cycle's enrichment results, and advances the
// phase. The outcome and its anomaly signal arrive as one value, so
// both change together or not at all.
func (s *Store) CommitOutcome(token uint64, outcome *domain.ScoreOutcome) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.cycle {
		return false
	}
	s.state.Outcome = outcome
	s.state.Products = []domain.RecommendedProduct{}
	switch outcome.Decision {
	case domain.DecisionRejected:
		s.state.Phase = domain.PhaseRejected
	case domain.DecisionFlagged:
		s.state.Phase = domain.PhaseFlagged
	default:
		s.state.Phase = domain.PhaseEnriching
	}
	return true
}

// MergeProducts installs enrichment results for the given cycle. A nil
// slice reads as a valid empty result. Results of a superseded cycle
// are dropped.
func (s *Store) MergeProducts(token uint64, products []domain.RecommendedProduct) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.cycle {
		return false
	}
	if products == nil {
		products = []domain.RecommendedProduct{}
	}
	s.state.Products = products
	s.state.Phase = domain.PhaseEnriched
	return true
}
