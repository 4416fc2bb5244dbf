package scoring

import (
	"testing"

	"github.com/finmetrics/credit-gateway/internal/core/domain"
)

func floatPtr(v float64) *float64 { return &v }

func TestClassifyAbsentStatusReadsAsApproved(t *testing.T) {
	outcome := classify(scoreResponse{
		CreditScoreEstimate: 580,
		Repayment:           40,
		Utilization:         30,
		Outstanding:         20,
		Inquiries:           10,
	})
	if outcome.Decision != domain.DecisionApproved {
		t.Fatalf("expected approved, got %s", outcome.Decision)
	}
	if outcome.Score != 580 {
		t.Fatalf("expected score 580, got %d", outcome.Score)
	}
	if outcome.Breakdown != (domain.Breakdown{Repayment: 40, Utilization: 30, Outstanding: 20, Inquiries: 10}) {
		t.Fatalf("unexpected breakdown: %+v", outcome.Breakdown)
	}
	if outcome.Anomaly != nil {
		t.Fatalf("expected nil anomaly, got %v", *outcome.Anomaly)
	}
	if outcome.Summary != "" {
		t.Fatalf("expected empty summary default, got %q", outcome.Summary)
	}
	if outcome.Recommendations == nil || len(outcome.Recommendations) != 0 {
		t.Fatalf("expected empty recommendation slice, got %+v", outcome.Recommendations)
	}
}

func TestClassifyUnknownStatusReadsAsApproved(t *testing.T) {
	outcome := classify(scoreResponse{Status: "accepted", CreditScoreEstimate: 701})
	if outcome.Decision != domain.DecisionApproved {
		t.Fatalf("expected approved for unknown status, got %s", outcome.Decision)
	}
}

func TestClassifyBreakdownDefaultsToZero(t *testing.T) {
	outcome := classify(scoreResponse{CreditScoreEstimate: 612})
	if outcome.Breakdown != (domain.Breakdown{}) {
		t.Fatalf("absent components must default to zero: %+v", outcome.Breakdown)
	}
}

func TestClassifyRejectedReasonPriority(t *testing.T) {
	for _, tc := range []struct {
		name string
		raw  scoreResponse
		want string
	}{
		{
			name: "description wins",
			raw:  scoreResponse{Status: "rejected", Description: "income below minimum", Reason: "other", Flags: []string{"x"}},
			want: "income below minimum",
		},
		{
			name: "reason next",
			raw:  scoreResponse{Status: "rejected", Reason: "thin credit file", Flags: []string{"x"}},
			want: "thin credit file",
		},
		{
			name: "joined flags next",
			raw:  scoreResponse{Status: "rejected", Flags: []string{"high_utilization", "recent_delinquency"}},
			want: "high_utilization, recent_delinquency",
		},
		{
			name: "placeholder last",
			raw:  scoreResponse{Status: "rejected"},
			want: "No details provided",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			outcome := classify(tc.raw)
			if outcome.Decision != domain.DecisionRejected {
				t.Fatalf("expected rejected, got %s", outcome.Decision)
			}
			if outcome.Reason != tc.want {
				t.Fatalf("expected reason %q, got %q", tc.want, outcome.Reason)
			}
		})
	}
}

func TestClassifyFlaggedCarriesAnomalySignal(t *testing.T) {
	outcome := classify(scoreResponse{
		Status:    "flagged",
		Flags:     []string{"velocity_check"},
		FraudRisk: floatPtr(0.83),
	})
	if outcome.Decision != domain.DecisionFlagged {
		t.Fatalf("expected flagged, got %s", outcome.Decision)
	}
	if outcome.Reason != "velocity_check" {
		t.Fatalf("unexpected reason: %s", outcome.Reason)
	}
	if outcome.Anomaly == nil || float64(*outcome.Anomaly) != 0.83 {
		t.Fatalf("expected anomaly 0.83, got %v", outcome.Anomaly)
	}
}

func TestFirstSignalPrefersAnomalyScoreOverFraudRisk(t *testing.T) {
	outcome := classify(scoreResponse{
		CreditScoreEstimate: 640,
		AnomalyScore:        floatPtr(0.2),
		FraudRisk:           floatPtr(0.9),
	})
	if outcome.Anomaly == nil || float64(*outcome.Anomaly) != 0.2 {
		t.Fatalf("anomaly_score must win over fraud_risk, got %v", outcome.Anomaly)
	}

	fallback := classify(scoreResponse{
		CreditScoreEstimate: 640,
		FraudRisk:           floatPtr(0.9),
	})
	if fallback.Anomaly == nil || float64(*fallback.Anomaly) != 0.9 {
		t.Fatalf("fraud_risk must be used when anomaly_score is null, got %v", fallback.Anomaly)
	}
}

func TestClassifyRoundsScoreEstimate(t *testing.T) {
	outcome := classify(scoreResponse{CreditScoreEstimate: 579.6})
	if outcome.Score != 580 {
		t.Fatalf("expected rounded score 580, got %d", outcome.Score)
	}
}
