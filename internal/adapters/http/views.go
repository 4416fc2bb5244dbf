package httpadapter

import "github.com/finmetrics/credit-gateway/internal/core/domain"

// outcomeView is the wire shape of one committed outcome, with the
// display fields the original dashboard derives (headline, credit
// health, high-risk marker) precomputed.
type outcomeView struct {
	Decision        domain.Decision  `json:"decision"`
	Message         string           `json:"message,omitempty"`
	Score           int              `json:"credit_score_estimate"`
	Breakdown       domain.Breakdown `json:"breakdown"`
	Summary         string           `json:"summary"`
	Recommendations []string         `json:"recommendations"`
	AnomalyScore    *float64         `json:"anomaly_score,omitempty"`
	HighRisk        bool             `json:"high_risk"`
	CreditHealth    string           `json:"credit_health,omitempty"`
}

func newOutcomeView(outcome *domain.ScoreOutcome) outcomeView {
	view := outcomeView{
		Decision:        outcome.Decision,
		Message:         outcome.Headline(),
		Score:           outcome.Score,
		Breakdown:       outcome.Breakdown,
		Summary:         outcome.Summary,
		Recommendations: outcome.Recommendations,
		CreditHealth:    outcome.HealthStatus(),
	}
	if outcome.Anomaly != nil {
		value := float64(*outcome.Anomaly)
		view.AnomalyScore = &value
		view.HighRisk = outcome.Anomaly.HighRisk()
	}
	return view
}

type stateView struct {
	Draft    domain.Profile              `json:"draft"`
	Phase    domain.Phase                `json:"phase"`
	Outcome  *outcomeView                `json:"outcome,omitempty"`
	Products []domain.RecommendedProduct `json:"products"`
}

func newStateView(state domain.ApplicationState) stateView {
	view := stateView{
		Draft:    state.Draft,
		Phase:    state.Phase,
		Products: state.Products,
	}
	if state.Outcome != nil {
		outcome := newOutcomeView(state.Outcome)
		view.Outcome = &outcome
	}
	return view
}
