package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rxassist/rxassist/internal/domain"
)

func loadedStore(t *testing.T) *Store {
	t.Helper()
	st := NewStore(t.TempDir())
	require.NoError(t, st.Load())
	return st
}

func TestLoadSeedsAndReadsSampleData(t *testing.T) {
	st := loadedStore(t)

	assert.True(t, st.Loaded())
	assert.Len(t, st.Medications(), 10)
	assert.Len(t, st.PriceRules(), 7)
	assert.Len(t, st.Policies(), 3)
}

func TestEnsureSampleDataIdempotent(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, EnsureSampleData(dir))

	first, err := os.ReadFile(filepath.Join(dir, medicationsFile))
	require.NoError(t, err)

	require.NoError(t, EnsureSampleData(dir))
	second, err := os.ReadFile(filepath.Join(dir, medicationsFile))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestLoadFailsOnMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, EnsureSampleData(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, priceRulesFile),
		[]byte("medication_id,insurance_type\nMED001,Tricare\n"), 0o644))

	st := NewStore(dir)
	err := st.Load()
	require.Error(t, err)
	assert.False(t, st.Loaded())

	_, err = st.Summary()
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestUnloadedStoreRefusesQueries(t *testing.T) {
	st := NewStore(t.TempDir())

	_, err := st.Summary()
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, err = st.CategoryPrices()
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, err = st.CoverageStatusCounts()
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, err = st.InsuranceCoverageCrossTab()
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, err = st.PriorAuthByCategory()
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestReadMedicationsStripsByteOrderMark(t *testing.T) {
	// Spreadsheet exports often prefix the header with a UTF-8 BOM; the
	// first column name must still resolve.
	path := filepath.Join(t.TempDir(), medicationsFile)
	content := "\uFEFF" +
		"id,name,category,base_price,manufacturer,ndc_code,quantity_limit,requires_prior_auth,active,therapeutic_class,generic_equivalent,controlled_substance_schedule\n" +
		"MED001,Lisinopril,Generic,15.99,Generic Pharma Co,12345-678-90,30,false,true,ACE Inhibitor,,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	medications, err := readMedications(path)
	require.NoError(t, err)
	require.Len(t, medications, 1)
	assert.Equal(t, "MED001", medications[0].ID)
}

func TestMedicationLookups(t *testing.T) {
	st := loadedStore(t)

	med, ok := st.MedicationByName("lipitor")
	require.True(t, ok)
	assert.Equal(t, "MED004", med.ID)
	assert.Equal(t, domain.CategoryBrand, med.Category)
	assert.Equal(t, "MED005", med.GenericEquivalent)

	_, ok = st.MedicationByName("Tylenol")
	assert.False(t, ok)

	generic, ok := st.MedicationByID("MED005")
	require.True(t, ok)
	assert.Equal(t, "Atorvastatin", generic.Name)
}

func TestRuleAndPolicyLookups(t *testing.T) {
	st := loadedStore(t)

	rules := st.RulesForMedication("MED001")
	require.Len(t, rules, 3)
	assert.Equal(t, domain.InsuranceCommercial, rules[0].InsuranceType)

	commercial := st.RulesForInsurance("commercial")
	assert.Len(t, commercial, 3)

	assert.Empty(t, st.RulesForInsurance("Tricare"))

	policies := st.PoliciesForDrug("MED007")
	require.Len(t, policies, 1)
	assert.Equal(t, "Specialty Authorization Policy", policies[0].Name)

	assert.Empty(t, st.PoliciesForDrug("MED001"))
}

func TestSummary(t *testing.T) {
	st := loadedStore(t)

	summary, err := st.Summary()
	require.NoError(t, err)

	assert.Equal(t, 10, summary.TotalMedications)
	assert.Equal(t, 3, summary.TotalPolicies)
	assert.Equal(t, "1113.99", summary.AverageBasePrice.StringFixed(2))
	assert.Equal(t, []domain.Category{
		domain.CategoryGeneric, domain.CategoryBrand,
		domain.CategorySpecialty, domain.CategoryControlled,
	}, summary.Categories)
	assert.Equal(t, []domain.InsuranceType{
		domain.InsuranceCommercial, domain.InsuranceMedicare, domain.InsuranceMedicaid,
	}, summary.InsuranceTypes)
	assert.Len(t, summary.TherapeuticClasses, 7)
}

func TestCategoryPrices(t *testing.T) {
	st := loadedStore(t)

	stats, err := st.CategoryPrices()
	require.NoError(t, err)
	require.Len(t, stats, 4)

	generic := stats[0]
	assert.Equal(t, domain.CategoryGeneric, generic.Category)
	assert.Equal(t, 4, generic.Count)
	assert.Equal(t, "12.99", generic.MinPrice.StringFixed(2))
	assert.Equal(t, "25.99", generic.MaxPrice.StringFixed(2))
}

func TestCoverageStatusCounts(t *testing.T) {
	st := loadedStore(t)

	counts, err := st.CoverageStatusCounts()
	require.NoError(t, err)

	byLabel := map[string]int{}
	for _, item := range counts {
		byLabel[item.Label] = item.Count
	}
	assert.Equal(t, 3, byLabel["Covered"])
	assert.Equal(t, 3, byLabel["Prior Authorization Required"])
	assert.Equal(t, 1, byLabel["Step Therapy Required"])
}

func TestInsuranceCoverageCrossTab(t *testing.T) {
	st := loadedStore(t)

	rows, err := st.InsuranceCoverageCrossTab()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Commercial", rows[0].Label)
	require.Len(t, rows[0].Counts, 2)
	assert.Equal(t, "Covered", rows[0].Counts[0].Label)
	assert.Equal(t, 1, rows[0].Counts[0].Count)
	assert.Equal(t, "Prior Authorization Required", rows[0].Counts[1].Label)
	assert.Equal(t, 2, rows[0].Counts[1].Count)
}

func TestPriorAuthByCategory(t *testing.T) {
	st := loadedStore(t)

	rows, err := st.PriorAuthByCategory()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, "Generic", rows[0].Label)
	require.Len(t, rows[0].Counts, 1)
	assert.Equal(t, "No Prior Auth", rows[0].Counts[0].Label)
	assert.Equal(t, 4, rows[0].Counts[0].Count)

	assert.Equal(t, "Brand", rows[1].Label)
	assert.Equal(t, "Prior Auth", rows[1].Counts[0].Label)
	assert.Equal(t, 2, rows[1].Counts[0].Count)
}

func TestOptionalFieldsRoundTrip(t *testing.T) {
	st := loadedStore(t)

	lisinopril, ok := st.MedicationByID("MED001")
	require.True(t, ok)
	require.NotNil(t, lisinopril.QuantityLimit)
	assert.Equal(t, 30, *lisinopril.QuantityLimit)
	assert.Empty(t, lisinopril.ControlledSubstanceSchedule)

	humira, ok := st.MedicationByID("MED007")
	require.True(t, ok)
	assert.Nil(t, humira.QuantityLimit)

	adderall, ok := st.MedicationByID("MED009")
	require.True(t, ok)
	assert.Equal(t, "II", adderall.ControlledSubstanceSchedule)
}

func TestPolicyListColumnsDecode(t *testing.T) {
	st := loadedStore(t)

	policies := st.Policies()
	require.Len(t, policies, 3)

	generic := policies[0]
	assert.Equal(t, []string{"Previous generic trial", "Adverse reaction documentation"}, generic.RequiredDocumentation)
	assert.Equal(t, []string{"MED004", "MED006"}, generic.ApplicableDrugs)
	assert.Equal(t, []domain.InsuranceType{domain.InsuranceCommercial, domain.InsuranceMedicare}, generic.InsuranceTypes)
	assert.Equal(t, []string{"Documented allergy to generic", "Treatment failure with generic"}, generic.OverrideConditions)
}
