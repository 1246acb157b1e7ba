package store

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/rxassist/rxassist/internal/logger"
)

// EnsureSampleData writes the built-in sample dataset into dir unless all
// three table files already exist. Re-running against a complete directory
// is a no-op, so repeated loads read identical content.
func EnsureSampleData(dir string) error {
	if sampleDataPresent(dir) {
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	if err := writeCSV(filepath.Join(dir, medicationsFile), medicationRows()); err != nil {
		return err
	}
	if err := writeCSV(filepath.Join(dir, priceRulesFile), priceRuleRows()); err != nil {
		return err
	}
	if err := writeCSV(filepath.Join(dir, policiesFile), policyRows()); err != nil {
		return err
	}

	logger.L().Infow("sample dataset created", "dir", dir)
	return nil
}

func sampleDataPresent(dir string) bool {
	for _, name := range []string{medicationsFile, priceRulesFile, policiesFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			return false
		}
	}
	return true
}

func writeCSV(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	writer.Flush()
	return writer.Error()
}

func jsonList(items ...string) string {
	b, _ := json.Marshal(items)
	return string(b)
}

func medicationRows() [][]string {
	return [][]string{
		{"id", "name", "category", "base_price", "manufacturer", "ndc_code", "quantity_limit", "requires_prior_auth", "active", "therapeutic_class", "generic_equivalent", "controlled_substance_schedule"},
		{"MED001", "Lisinopril", "Generic", "15.99", "Generic Pharma Co", "12345-678-90", "30", "false", "true", "ACE Inhibitor", "", ""},
		{"MED002", "Metformin", "Generic", "12.99", "Generic Pharma Co", "12345-678-91", "60", "false", "true", "Antidiabetic", "", ""},
		{"MED003", "Amlodipine", "Generic", "18.99", "Generic Pharma Co", "12345-678-92", "30", "false", "true", "Calcium Channel Blocker", "", ""},
		{"MED004", "Lipitor", "Brand", "145.99", "Pfizer", "98765-432-10", "", "true", "true", "Statin", "MED005", ""},
		{"MED005", "Atorvastatin", "Generic", "25.99", "Generic Pharma Co", "11111-222-33", "30", "false", "true", "Statin", "", ""},
		{"MED006", "Januvia", "Brand", "425.99", "Merck", "98765-432-11", "", "true", "true", "Antidiabetic", "", ""},
		{"MED007", "Humira", "Specialty", "5250.99", "AbbVie", "77777-888-99", "", "true", "true", "TNF Inhibitor", "", ""},
		{"MED008", "Enbrel", "Specialty", "4890.99", "Amgen", "77777-888-98", "", "true", "true", "TNF Inhibitor", "", ""},
		{"MED009", "Adderall XR", "Controlled", "225.99", "Shire", "33333-444-55", "30", "true", "true", "Stimulant", "", "II"},
		{"MED010", "Xanax", "Controlled", "125.99", "Pfizer", "33333-444-56", "30", "true", "true", "Benzodiazepine", "", "IV"},
	}
}

func priceRuleRows() [][]string {
	return [][]string{
		{"medication_id", "insurance_type", "discount_percentage", "min_copay", "max_copay", "coverage_status", "effective_date", "expiration_date", "tier"},
		{"MED001", "Commercial", "80.0", "5.0", "25.0", "Covered", "2024-01-01", "2024-12-31", "1"},
		{"MED004", "Commercial", "70.0", "30.0", "75.0", "Prior Authorization Required", "2024-01-01", "2024-12-31", "3"},
		{"MED007", "Commercial", "60.0", "100.0", "500.0", "Prior Authorization Required", "2024-01-01", "2024-12-31", "4"},
		{"MED001", "Medicare", "85.0", "3.0", "20.0", "Covered", "2024-01-01", "2024-12-31", "1"},
		{"MED004", "Medicare", "75.0", "25.0", "65.0", "Step Therapy Required", "2024-01-01", "2024-12-31", "3"},
		{"MED001", "Medicaid", "90.0", "1.0", "15.0", "Covered", "2024-01-01", "2024-12-31", "1"},
		{"MED007", "Medicaid", "95.0", "3.0", "25.0", "Prior Authorization Required", "2024-01-01", "2024-12-31", "4"},
	}
}

func policyRows() [][]string {
	return [][]string{
		{"id", "name", "description", "effective_date", "expiration_date", "required_documentation", "applicable_drugs", "insurance_types", "override_conditions"},
		{
			"POL001",
			"Generic First Policy",
			"Requires trial of generic alternatives before brand name drugs",
			"2024-01-01", "2024-12-31",
			jsonList("Previous generic trial", "Adverse reaction documentation"),
			jsonList("MED004", "MED006"),
			jsonList("Commercial", "Medicare"),
			jsonList("Documented allergy to generic", "Treatment failure with generic"),
		},
		{
			"POL002",
			"Specialty Authorization Policy",
			"Requirements for specialty medication coverage",
			"2024-01-01", "2024-12-31",
			jsonList("Diagnosis confirmation", "Lab results", "Specialist consultation"),
			jsonList("MED007", "MED008"),
			jsonList("Commercial", "Medicare", "Medicaid"),
			jsonList("Urgent need", "Continuing therapy"),
		},
		{
			"POL003",
			"Controlled Substance Policy",
			"Guidelines for controlled substance prescriptions",
			"2024-01-01", "2024-12-31",
			jsonList("Diagnosis", "Drug screening", "Treatment plan"),
			jsonList("MED009", "MED010"),
			jsonList("Commercial", "Medicare", "Medicaid"),
			jsonList("Palliative care", "Cancer treatment"),
		},
	}
}
