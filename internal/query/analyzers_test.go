package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rxassist/rxassist/internal/domain"
	"github.com/rxassist/rxassist/internal/store"
)

func TestAnalyzePrice(t *testing.T) {
	e := newTestEngine(&fakeChat{})

	got := e.AnalyzePrice("Lisinopril")

	want := "Price Analysis for Lisinopril:\n" +
		"Base Price: $15.99\n" +
		"\nInsurance Coverage:\n" +
		"- Commercial: $5.00 (Discount: 80%, Status: Covered)\n" +
		"- Medicare: $3.00 (Discount: 85%, Status: Covered)\n"
	assert.Equal(t, want, got)
}

func TestAnalyzePriceUnknownMedication(t *testing.T) {
	e := newTestEngine(&fakeChat{})

	assert.Equal(t, NotFoundReply, e.AnalyzePrice("Tylenol"))
}

func TestAnalyzeCoverage(t *testing.T) {
	e := newTestEngine(&fakeChat{})

	got := e.AnalyzeCoverage("Commercial")

	assert.Contains(t, got, "Coverage Analysis for Commercial:")
	assert.Contains(t, got, "- Covered: 1 medications")
	assert.Contains(t, got, "- Prior Authorization Required: 1 medications")
	assert.Contains(t, got, "Average Discount: 75.0%")
	assert.Contains(t, got, "- Minimum: $5.00")
	assert.Contains(t, got, "- Maximum: $75.00")
}

func TestAnalyzeCoverageUnknownInsurance(t *testing.T) {
	e := newTestEngine(&fakeChat{})

	assert.Equal(t, "No coverage information found for Tricare.", e.AnalyzeCoverage("Tricare"))
}

func TestGenericAlternativeAlreadyGeneric(t *testing.T) {
	e := newTestEngine(&fakeChat{})

	assert.Equal(t, "Atorvastatin is already a generic medication.",
		e.GenericAlternative("Atorvastatin"))
}

func TestGenericAlternativeNoneOnFile(t *testing.T) {
	e := newTestEngine(&fakeChat{})

	assert.Equal(t, "No generic alternative found for Januvia.",
		e.GenericAlternative("Januvia"))
}

func TestGenericAlternativeNegativeSavings(t *testing.T) {
	st := store.NewFromTables([]domain.Medication{
		{ID: "MED010", Name: "BrandLow", Category: domain.CategoryBrand,
			BasePrice: dec("10.00"), GenericEquivalent: "MED011", Active: true},
		{ID: "MED011", Name: "GenericHigh", Category: domain.CategoryGeneric,
			BasePrice: dec("25.99"), Active: true},
	}, nil, nil)
	e := NewEngine(st, nil, time.Second)

	got := e.GenericAlternative("BrandLow")

	assert.Contains(t, got, "* Potential Savings: $-15.99")
}

func TestAuthorizationRequirementsWithPolicy(t *testing.T) {
	e := newTestEngine(&fakeChat{})

	got := e.AuthorizationRequirements("Humira")

	want := "Authorization Requirements for Humira:\n\n" +
		"Prior Authorization Required\n\n" +
		"Policy: Specialty Authorization Policy\n" +
		"Description: Requirements for specialty medication coverage\n" +
		"Required Documentation:\n" +
		"- Diagnosis confirmation\n" +
		"- Lab results\n" +
		"\nOverride Conditions:\n" +
		"- Urgent need\n" +
		"- Continuing therapy\n" +
		"\n"
	assert.Equal(t, want, got)
}

func TestAuthorizationRequirementsNoPolicyOnFile(t *testing.T) {
	e := newTestEngine(&fakeChat{})

	got := e.AuthorizationRequirements("Januvia")

	assert.Contains(t, got, "Prior Authorization Required")
	assert.Contains(t, got, "No specific policy requirements found.")
}

func TestAuthorizationRequirementsNotNeeded(t *testing.T) {
	e := newTestEngine(&fakeChat{})

	got := e.AuthorizationRequirements("Lisinopril")

	assert.Equal(t, "Authorization Requirements for Lisinopril:\n\n"+
		"This medication does not require prior authorization.\n", got)
}

func TestAuthorizationRequirementsUnknownMedication(t *testing.T) {
	e := newTestEngine(&fakeChat{})

	assert.Equal(t, NotFoundReply, e.AuthorizationRequirements("Tylenol"))
}
