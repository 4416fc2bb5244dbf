package domain

import "fmt"

type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
	DecisionFlagged  Decision = "flagged"
)

// AnomalyThreshold marks an application high-risk for display when the
// anomaly signal strictly exceeds it. It does not change the decision.
const AnomalyThreshold = 0.7

// HealthScoreThreshold separates the APPROVED and REJECTED credit
// health readings of an approved outcome.
const HealthScoreThreshold = 600

// AnomalySignal is the optional fraud-risk indicator attached to a
// scoring response, on a 0.0-1.0 scale.
type AnomalySignal float64

func (a AnomalySignal) HighRisk() bool {
	return float64(a) > AnomalyThreshold
}

// Breakdown holds the four independently reported score contributions.
// The scoring service states no relationship between them and the
// total score, and none is enforced here.
type Breakdown struct {
	Repayment   float64 `json:"repayment"`
	Utilization float64 `json:"utilization"`
	Outstanding float64 `json:"outstanding"`
	Inquiries   float64 `json:"inquiries"`
}

// ScoreOutcome is the classified result of one completed scoring call.
// It is immutable after classification and replaced wholesale by the
// next submission.
type ScoreOutcome struct {
	Decision        Decision       `json:"decision"`
	Score           int            `json:"credit_score_estimate"`
	Breakdown       Breakdown      `json:"breakdown"`
	Summary         string         `json:"summary"`
	Recommendations []string       `json:"recommendations"`
	Anomaly         *AnomalySignal `json:"anomaly_score,omitempty"`
	Reason          string         `json:"reason,omitempty"`
}

// Terminal reports whether the outcome ends the cycle without
// enrichment.
func (o *ScoreOutcome) Terminal() bool {
	return o.Decision == DecisionRejected || o.Decision == DecisionFlagged
}

// Headline is the user-facing message for a terminal outcome.
func (o *ScoreOutcome) Headline() string {
	switch o.Decision {
	case DecisionRejected:
		return fmt.Sprintf("Application rejected: %s", o.Reason)
	case DecisionFlagged:
		return fmt.Sprintf("Application flagged: %s", o.Reason)
	default:
		return ""
	}
}

// HealthStatus derives the displayed credit health of an approved
// outcome. Terminal outcomes carry no health reading.
func (o *ScoreOutcome) HealthStatus() string {
	if o.Decision != DecisionApproved {
		return ""
	}
	if o.Score < HealthScoreThreshold {
		return "REJECTED"
	}
	return "APPROVED"
}

// RecommendedProduct is one enrichment result from the similarity
// service, independent of and additive to ScoreOutcome.Recommendations.
type RecommendedProduct struct {
	Title  string `json:"title"`
	Text   string `json:"text"`
	Source string `json:"source"`
}
