package domain

import (
	"fmt"
	"strings"
)

// Profile is the applicant's submitted attribute set. Values stay
// string-encoded end to end; the scoring service owns all numeric
// interpretation.
type Profile map[string]string

// FieldOrder is the canonical set of recognized profile keys, in the
// order validation scans them.
var FieldOrder = []string{
	"Name",
	"Age",
	"Occupation",
	"Annual_Income",
	"Monthly_Inhand_Salary",
	"Num_Bank_Accounts",
	"Num_Credit_Card",
	"Interest_Rate",
	"Num_of_Loan",
	"Type_of_Loan",
	"Delay_from_due_date",
	"Num_of_Delayed_Payment",
	"Credit_Mix",
	"Outstanding_Debt",
	"Credit_Utilization_Ratio",
	"Credit_History_Age",
	"Total_EMI_per_month",
}

// MissingFieldError identifies the first blank profile field found
// during validation.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrInvalidInput
}

// Validate reports the first recognized field, in FieldOrder, whose
// value is empty after trimming whitespace. It is a pure check and
// must pass before any network call is made.
func (p Profile) Validate() error {
	for _, key := range FieldOrder {
		if strings.TrimSpace(p[key]) == "" {
			return &MissingFieldError{Field: key}
		}
	}
	return nil
}

// Clone returns an independent copy restricted to recognized keys, so
// a submitted snapshot cannot be mutated by later draft edits.
func (p Profile) Clone() Profile {
	out := make(Profile, len(FieldOrder))
	for _, key := range FieldOrder {
		if v, ok := p[key]; ok {
			out[key] = v
		}
	}
	return out
}

// EnrichmentQuery synthesizes the descriptive text sent to the
// similarity service. The template is fixed; only the four profile
// fields vary.
func (p Profile) EnrichmentQuery() string {
	return fmt.Sprintf(
		"Customer profile with income %s, occupation %s, utilization %s, and credit mix %s",
		p["Annual_Income"], p["Occupation"], p["Credit_Utilization_Ratio"], p["Credit_Mix"],
	)
}

// DefaultProfile returns the sample draft the state store starts with.
func DefaultProfile() Profile {
	return Profile{
		"Name":                     "Test User",
		"Age":                      "30",
		"Occupation":               "Engineer",
		"Annual_Income":            "16000",
		"Monthly_Inhand_Salary":    "1787",
		"Num_Bank_Accounts":        "4",
		"Num_Credit_Card":          "5",
		"Interest_Rate":            "25",
		"Num_of_Loan":              "2",
		"Type_of_Loan":             "Home Loan",
		"Delay_from_due_date":      "2",
		"Num_of_Delayed_Payment":   "7",
		"Credit_Mix":               "Fair",
		"Outstanding_Debt":         "7175",
		"Credit_Utilization_Ratio": "25",
		"Credit_History_Age":       "120",
		"Total_EMI_per_month":      "300",
	}
}
