package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Category classifies a medication for pricing and coverage purposes.
type Category string

const (
	CategoryGeneric    Category = "Generic"
	CategoryBrand      Category = "Brand"
	CategorySpecialty  Category = "Specialty"
	CategoryControlled Category = "Controlled"
)

// ParseCategory resolves a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "generic":
		return CategoryGeneric, nil
	case "brand":
		return CategoryBrand, nil
	case "specialty":
		return CategorySpecialty, nil
	case "controlled":
		return CategoryControlled, nil
	default:
		return "", fmt.Errorf("unknown medication category %q", s)
	}
}

// Medication represents a single dispensable drug product in the formulary.
type Medication struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Category          Category        `json:"category"`
	BasePrice         decimal.Decimal `json:"base_price"`
	Manufacturer      string          `json:"manufacturer"`
	NDCCode           string          `json:"ndc_code"`
	QuantityLimit     *int            `json:"quantity_limit,omitempty"`
	RequiresPriorAuth bool            `json:"requires_prior_auth"`
	Active            bool            `json:"active"`
	TherapeuticClass  string          `json:"therapeutic_class"`

	// GenericEquivalent holds the ID of the bioequivalent generic product.
	// Empty for medications that are themselves generic or have no equivalent.
	GenericEquivalent string `json:"generic_equivalent,omitempty"`

	// ControlledSubstanceSchedule is the DEA schedule (e.g. "II"), set only
	// for CategoryControlled medications.
	ControlledSubstanceSchedule string `json:"controlled_substance_schedule,omitempty"`
}

// HasGenericEquivalent reports whether a generic alternative is recorded.
func (m *Medication) HasGenericEquivalent() bool {
	return m.GenericEquivalent != ""
}

// IsGeneric reports whether the medication is itself a generic product.
func (m *Medication) IsGeneric() bool {
	return m.Category == CategoryGeneric
}
