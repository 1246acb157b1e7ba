package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InsuranceType identifies the payer category a price rule applies to.
type InsuranceType string

const (
	InsuranceCommercial InsuranceType = "Commercial"
	InsuranceMedicare   InsuranceType = "Medicare"
	InsuranceMedicaid   InsuranceType = "Medicaid"
)

// InsuranceTypes lists all payer categories in their canonical order. The
// order matters: intent matching scans these literals in sequence.
var InsuranceTypes = []InsuranceType{
	InsuranceCommercial,
	InsuranceMedicare,
	InsuranceMedicaid,
}

// ParseInsuranceType resolves an insurance type name case-insensitively.
func ParseInsuranceType(s string) (InsuranceType, error) {
	for _, it := range InsuranceTypes {
		if strings.EqualFold(strings.TrimSpace(s), string(it)) {
			return it, nil
		}
	}
	return "", fmt.Errorf("unknown insurance type %q", s)
}

// CoverageStatus describes how a payer covers a medication.
type CoverageStatus string

const (
	StatusCovered           CoverageStatus = "Covered"
	StatusPriorAuthRequired CoverageStatus = "Prior Authorization Required"
	StatusStepTherapy       CoverageStatus = "Step Therapy Required"
	StatusNotCovered        CoverageStatus = "Not Covered"
)

// PriceRule maps a medication to the pricing terms of one insurance type.
// A medication may carry zero or more rules per payer.
type PriceRule struct {
	MedicationID       string          `json:"medication_id"`
	InsuranceType      InsuranceType   `json:"insurance_type"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	MinCopay           decimal.Decimal `json:"min_copay"`
	MaxCopay           decimal.Decimal `json:"max_copay"`
	CoverageStatus     CoverageStatus  `json:"coverage_status"`
	EffectiveDate      time.Time       `json:"effective_date"`
	ExpirationDate     time.Time       `json:"expiration_date"`
	Tier               int             `json:"tier"`
}

var oneHundred = decimal.NewFromInt(100)

// FinalPrice computes the patient-facing price for a rule: the discounted
// base price, upper-bounded by MaxCopay and then lower-bounded by MinCopay.
//
// The clamp order is deliberate and mirrors the pricing rules as published:
// when a rule carries MinCopay > MaxCopay (bad data), the result is forced
// to MinCopay regardless of the discount. Load does not reject such rows.
func (r *PriceRule) FinalPrice(basePrice decimal.Decimal) decimal.Decimal {
	discount := decimal.NewFromInt(1).Sub(r.DiscountPercentage.Div(oneHundred))
	raw := basePrice.Mul(discount)
	final := decimal.Min(raw, r.MaxCopay)
	return decimal.Max(final, r.MinCopay)
}
