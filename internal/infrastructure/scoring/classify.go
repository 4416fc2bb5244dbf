package scoring

import (
	"math"
	"strings"

	"github.com/finmetrics/credit-gateway/internal/core/domain"
)

// noDetailsReason is the fixed placeholder when a terminal response
// carries no description, reason, or flags.
const noDetailsReason = "No details provided"

type scoreResponse struct {
	Status              string   `json:"status"`
	CreditScoreEstimate float64  `json:"credit_score_estimate"`
	Repayment           float64  `json:"repayment"`
	Utilization         float64  `json:"utilization"`
	Outstanding         float64  `json:"outstanding"`
	Inquiries           float64  `json:"inquiries"`
	Summary             string   `json:"summary"`
	Recommendations     []string `json:"recommendations"`
	AnomalyScore        *float64 `json:"anomaly_score"`
	FraudRisk           *float64 `json:"fraud_risk"`
	Description         string   `json:"description"`
	Reason              string   `json:"reason"`
	Flags               []string `json:"flags"`
}

// classify maps a scoring response onto an outcome. Any status other
// than "rejected" or "flagged", including an absent one, reads as
// approved.
func classify(raw scoreResponse) *domain.ScoreOutcome {
	switch raw.Status {
	case "rejected":
		return &domain.ScoreOutcome{
			Decision: domain.DecisionRejected,
			Reason:   resolveReason(raw),
		}
	case "flagged":
		return &domain.ScoreOutcome{
			Decision: domain.DecisionFlagged,
			Reason:   resolveReason(raw),
			Anomaly:  firstSignal(raw.AnomalyScore, raw.FraudRisk),
		}
	}

	recommendations := raw.Recommendations
	if recommendations == nil {
		recommendations = []string{}
	}
	return &domain.ScoreOutcome{
		Decision: domain.DecisionApproved,
		Score:    int(math.Round(raw.CreditScoreEstimate)),
		Breakdown: domain.Breakdown{
			Repayment:   raw.Repayment,
			Utilization: raw.Utilization,
			Outstanding: raw.Outstanding,
			Inquiries:   raw.Inquiries,
		},
		Summary:         raw.Summary,
		Recommendations: recommendations,
		Anomaly:         firstSignal(raw.AnomalyScore, raw.FraudRisk),
	}
}

// resolveReason picks the human-readable reason of a terminal
// response: description, then reason, then the joined flags, then the
// placeholder. It never fails.
func resolveReason(raw scoreResponse) string {
	if raw.Description != "" {
		return raw.Description
	}
	if raw.Reason != "" {
		return raw.Reason
	}
	if len(raw.Flags) > 0 {
		return strings.Join(raw.Flags, ", ")
	}
	return noDetailsReason
}

// firstSignal is the ordered-fallback resolver for the anomaly signal:
// the first non-null candidate wins.
func firstSignal(candidates ...*float64) *domain.AnomalySignal {
	for _, c := range candidates {
		if c != nil {
			signal := domain.AnomalySignal(*c)
			return &signal
		}
	}
	return nil
}
