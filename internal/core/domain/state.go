package domain

// Phase tracks where the current submission cycle stands. Validation
// never suspends, so it is not an observable phase.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseScoring   Phase = "scoring"
	PhaseRejected  Phase = "rejected"
	PhaseFlagged   Phase = "flagged"
	PhaseEnriching Phase = "enriching"
	PhaseEnriched  Phase = "enriched"
)

// ApplicationState is the in-memory aggregate the view layer reads.
// Outcome is nil before the first committed submission; Products may
// arrive after the outcome, or never.
type ApplicationState struct {
	Draft    Profile              `json:"draft"`
	Phase    Phase                `json:"phase"`
	Outcome  *ScoreOutcome        `json:"outcome,omitempty"`
	Products []RecommendedProduct `json:"products"`
}
