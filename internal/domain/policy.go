package domain

import "time"

// Policy is an insurer rule set governing when a group of medications is
// covered, and what paperwork a prescriber must supply.
type Policy struct {
	ID                    string          `json:"id"`
	Name                  string          `json:"name"`
	Description           string          `json:"description"`
	EffectiveDate         time.Time       `json:"effective_date"`
	ExpirationDate        time.Time       `json:"expiration_date"`
	RequiredDocumentation []string        `json:"required_documentation"`
	ApplicableDrugs       []string        `json:"applicable_drugs"`
	InsuranceTypes        []InsuranceType `json:"insurance_types"`
	OverrideConditions    []string        `json:"override_conditions"`
}

// AppliesTo reports whether the policy's drug list contains the medication ID.
// Referenced IDs are not validated against the formulary at load time.
func (p *Policy) AppliesTo(medicationID string) bool {
	for _, id := range p.ApplicableDrugs {
		if id == medicationID {
			return true
		}
	}
	return false
}
