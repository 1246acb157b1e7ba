package query

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rxassist/rxassist/internal/domain"
	"github.com/rxassist/rxassist/internal/store"
)

// NotFoundReply is returned when a question names no known medication.
const NotFoundReply = "Medication not found."

// AnalyzePrice reports the patient-facing price of a medication under every
// price rule on file for it.
func (e *Engine) AnalyzePrice(medicationName string) string {
	med, ok := e.store.MedicationByName(medicationName)
	if !ok {
		return NotFoundReply
	}
	return e.analyzePrice(med)
}

func (e *Engine) analyzePrice(med *domain.Medication) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Price Analysis for %s:\n", med.Name)
	fmt.Fprintf(&b, "Base Price: $%s\n", med.BasePrice.StringFixed(2))
	b.WriteString("\nInsurance Coverage:\n")

	for _, rule := range e.store.RulesForMedication(med.ID) {
		final := rule.FinalPrice(med.BasePrice)
		fmt.Fprintf(&b, "- %s: $%s (Discount: %s%%, Status: %s)\n",
			rule.InsuranceType, final.StringFixed(2),
			rule.DiscountPercentage.String(), rule.CoverageStatus)
	}
	return b.String()
}

// AnalyzeCoverage summarizes all price rules for one insurance type: a
// status breakdown, the mean discount, and the copay range.
func (e *Engine) AnalyzeCoverage(insuranceType string) string {
	return e.analyzeCoverage(insuranceType)
}

func (e *Engine) analyzeCoverage(insuranceType string) string {
	rules := e.store.RulesForInsurance(insuranceType)
	if len(rules) == 0 {
		return fmt.Sprintf("No coverage information found for %s.", insuranceType)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Coverage Analysis for %s:\n\n", insuranceType)

	b.WriteString("Coverage Status Breakdown:\n")
	for _, item := range statusCounts(rules) {
		fmt.Fprintf(&b, "- %s: %d medications\n", item.Label, item.Count)
	}

	totalDiscount := decimal.Zero
	minCopay := rules[0].MinCopay
	maxCopay := rules[0].MaxCopay
	for _, r := range rules {
		totalDiscount = totalDiscount.Add(r.DiscountPercentage)
		if r.MinCopay.LessThan(minCopay) {
			minCopay = r.MinCopay
		}
		if r.MaxCopay.GreaterThan(maxCopay) {
			maxCopay = r.MaxCopay
		}
	}
	avgDiscount := totalDiscount.Div(decimal.NewFromInt(int64(len(rules))))

	fmt.Fprintf(&b, "\nAverage Discount: %s%%\n", avgDiscount.StringFixed(1))
	b.WriteString("Copay Ranges:\n")
	fmt.Fprintf(&b, "- Minimum: $%s\n", minCopay.StringFixed(2))
	fmt.Fprintf(&b, "- Maximum: $%s\n", maxCopay.StringFixed(2))
	return b.String()
}

func statusCounts(rules []domain.PriceRule) []store.CountItem {
	var items []store.CountItem
	index := make(map[domain.CoverageStatus]int)
	for _, r := range rules {
		i, ok := index[r.CoverageStatus]
		if !ok {
			index[r.CoverageStatus] = len(items)
			items = append(items, store.CountItem{Label: string(r.CoverageStatus)})
			i = len(items) - 1
		}
		items[i].Count++
	}
	return items
}

// GenericAlternative reports the generic equivalent of a brand medication
// and the direct price difference between the two.
func (e *Engine) GenericAlternative(medicationName string) string {
	med, ok := e.store.MedicationByName(medicationName)
	if !ok {
		return NotFoundReply
	}
	return e.genericAlternative(med)
}

func (e *Engine) genericAlternative(med *domain.Medication) string {
	if med.IsGeneric() {
		return fmt.Sprintf("%s is already a generic medication.", med.Name)
	}
	if !med.HasGenericEquivalent() {
		return fmt.Sprintf("No generic alternative found for %s.", med.Name)
	}

	generic, ok := e.store.MedicationByID(med.GenericEquivalent)
	if !ok {
		return fmt.Sprintf("No generic alternative found for %s.", med.Name)
	}

	// Savings are a direct subtraction; a generic priced above the brand
	// reports negative.
	savings := med.BasePrice.Sub(generic.BasePrice)

	var b strings.Builder
	fmt.Fprintf(&b, "Generic Alternative for %s:\n", med.Name)
	fmt.Fprintf(&b, "- Generic Name: %s\n", generic.Name)
	b.WriteString("- Price Comparison:\n")
	fmt.Fprintf(&b, "  * Brand Price: $%s\n", med.BasePrice.StringFixed(2))
	fmt.Fprintf(&b, "  * Generic Price: $%s\n", generic.BasePrice.StringFixed(2))
	fmt.Fprintf(&b, "  * Potential Savings: $%s\n", savings.StringFixed(2))
	return b.String()
}

// AuthorizationRequirements reports whether a medication needs prior
// authorization and, if so, every policy that applies to it.
func (e *Engine) AuthorizationRequirements(medicationName string) string {
	med, ok := e.store.MedicationByName(medicationName)
	if !ok {
		return NotFoundReply
	}
	return e.authorizationRequirements(med)
}

func (e *Engine) authorizationRequirements(med *domain.Medication) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Authorization Requirements for %s:\n\n", med.Name)

	if !med.RequiresPriorAuth {
		b.WriteString("This medication does not require prior authorization.\n")
		return b.String()
	}

	b.WriteString("Prior Authorization Required\n\n")

	policies := e.store.PoliciesForDrug(med.ID)
	if len(policies) == 0 {
		b.WriteString("No specific policy requirements found.")
		return b.String()
	}

	for _, policy := range policies {
		fmt.Fprintf(&b, "Policy: %s\n", policy.Name)
		fmt.Fprintf(&b, "Description: %s\n", policy.Description)
		b.WriteString("Required Documentation:\n")
		for _, doc := range policy.RequiredDocumentation {
			fmt.Fprintf(&b, "- %s\n", doc)
		}
		b.WriteString("\nOverride Conditions:\n")
		for _, condition := range policy.OverrideConditions {
			fmt.Fprintf(&b, "- %s\n", condition)
		}
		b.WriteString("\n")
	}
	return b.String()
}
