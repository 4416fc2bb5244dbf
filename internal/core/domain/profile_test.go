package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePassesCompleteProfile(t *testing.T) {
	if err := DefaultProfile().Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestValidateReportsFirstBlankFieldInCanonicalOrder(t *testing.T) {
	profile := DefaultProfile()
	profile["Credit_Mix"] = "   "
	profile["Age"] = ""

	err := profile.Validate()
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if missing.Field != "Age" {
		t.Fatalf("expected first blank field Age, got %s", missing.Field)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected error to unwrap to ErrInvalidInput")
	}
}

func TestValidateTreatsAbsentKeyAsBlank(t *testing.T) {
	profile := DefaultProfile()
	delete(profile, "Occupation")

	err := profile.Validate()
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if missing.Field != "Occupation" {
		t.Fatalf("expected Occupation, got %s", missing.Field)
	}
}

func TestCloneIsIndependentAndDropsUnrecognizedKeys(t *testing.T) {
	profile := DefaultProfile()
	profile["unexpected"] = "value"

	clone := profile.Clone()
	if _, ok := clone["unexpected"]; ok {
		t.Fatalf("clone must not carry unrecognized keys")
	}

	profile["Name"] = "Changed"
	if clone["Name"] != "Test User" {
		t.Fatalf("clone must not observe later edits, got %s", clone["Name"])
	}
}

func TestEnrichmentQueryTemplate(t *testing.T) {
	query := DefaultProfile().EnrichmentQuery()
	want := "Customer profile with income 16000, occupation Engineer, utilization 25, and credit mix Fair"
	if query != want {
		t.Fatalf("unexpected query:\n got %s\nwant %s", query, want)
	}
	for _, fragment := range []string{"16000", "Engineer", "25", "Fair"} {
		if !strings.Contains(query, fragment) {
			t.Fatalf("query missing %q: %s", fragment, query)
		}
	}
}
