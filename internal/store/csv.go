package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"

	"github.com/rxassist/rxassist/internal/domain"
)

// rowReader wraps a CSV table with header-name column access, so tables
// survive column reordering.
type rowReader struct {
	colIdx map[string]int
	row    []string
	rowNum int
	err    error
}

func openTable(path string) (*csv.Reader, *rowReader, *os.File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, err
	}

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		file.Close()
		return nil, nil, nil, fmt.Errorf("read header: %w", err)
	}

	colIdx := make(map[string]int, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
		colIdx[h] = i
	}

	return reader, &rowReader{colIdx: colIdx, rowNum: 1}, file, nil
}

func (rr *rowReader) setRow(row []string) {
	rr.row = row
	rr.rowNum++
	rr.err = nil
}

// field returns the named column of the current row. A missing column or a
// short row is recorded as an error and returned as "".
func (rr *rowReader) field(name string) string {
	idx, ok := rr.colIdx[name]
	if !ok {
		rr.fail(fmt.Errorf("missing column %q", name))
		return ""
	}
	if idx >= len(rr.row) {
		rr.fail(fmt.Errorf("row %d: missing value for column %q", rr.rowNum, name))
		return ""
	}
	return strings.TrimSpace(rr.row[idx])
}

func (rr *rowReader) fail(err error) {
	if rr.err == nil {
		rr.err = err
	}
}

func (rr *rowReader) decimalField(name string) decimal.Decimal {
	raw := rr.field(name)
	if raw == "" || rr.err != nil {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		rr.fail(fmt.Errorf("row %d: column %q: %w", rr.rowNum, name, err))
		return decimal.Zero
	}
	return d
}

func (rr *rowReader) boolField(name string) bool {
	raw := rr.field(name)
	if raw == "" || rr.err != nil {
		return false
	}
	b, err := strconv.ParseBool(strings.ToLower(raw))
	if err != nil {
		rr.fail(fmt.Errorf("row %d: column %q: %w", rr.rowNum, name, err))
		return false
	}
	return b
}

func (rr *rowReader) intField(name string) int {
	raw := rr.field(name)
	if raw == "" || rr.err != nil {
		return 0
	}
	// Tolerate float-formatted integers ("30.0") from spreadsheet exports.
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		rr.fail(fmt.Errorf("row %d: column %q: %w", rr.rowNum, name, err))
		return 0
	}
	return int(f)
}

func (rr *rowReader) optionalIntField(name string) *int {
	if raw := rr.field(name); raw == "" || rr.err != nil {
		return nil
	}
	v := rr.intField(name)
	if rr.err != nil {
		return nil
	}
	return &v
}

func (rr *rowReader) dateField(name string) time.Time {
	raw := rr.field(name)
	if raw == "" || rr.err != nil {
		return time.Time{}
	}
	t, err := dateparse.ParseAny(raw)
	if err != nil {
		rr.fail(fmt.Errorf("row %d: column %q: %w", rr.rowNum, name, err))
		return time.Time{}
	}
	return t
}

// listField decodes a column holding a JSON-encoded array of strings.
func (rr *rowReader) listField(name string) []string {
	raw := rr.field(name)
	if raw == "" || rr.err != nil {
		return nil
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		rr.fail(fmt.Errorf("row %d: column %q: %w", rr.rowNum, name, err))
		return nil
	}
	return items
}

func readMedications(path string) ([]domain.Medication, error) {
	reader, rr, file, err := openTable(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	medications := make([]domain.Medication, 0, len(rows))
	for _, row := range rows {
		rr.setRow(row)

		category, err := domain.ParseCategory(rr.field("category"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rr.rowNum, err)
		}

		med := domain.Medication{
			ID:                          rr.field("id"),
			Name:                        rr.field("name"),
			Category:                    category,
			BasePrice:                   rr.decimalField("base_price"),
			Manufacturer:                rr.field("manufacturer"),
			NDCCode:                     rr.field("ndc_code"),
			QuantityLimit:               rr.optionalIntField("quantity_limit"),
			RequiresPriorAuth:           rr.boolField("requires_prior_auth"),
			Active:                      rr.boolField("active"),
			TherapeuticClass:            rr.field("therapeutic_class"),
			GenericEquivalent:           rr.field("generic_equivalent"),
			ControlledSubstanceSchedule: rr.field("controlled_substance_schedule"),
		}
		if rr.err != nil {
			return nil, rr.err
		}
		medications = append(medications, med)
	}
	return medications, nil
}

func readPriceRules(path string) ([]domain.PriceRule, error) {
	reader, rr, file, err := openTable(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	rules := make([]domain.PriceRule, 0, len(rows))
	for _, row := range rows {
		rr.setRow(row)

		insuranceType, err := domain.ParseInsuranceType(rr.field("insurance_type"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rr.rowNum, err)
		}

		rule := domain.PriceRule{
			MedicationID:       rr.field("medication_id"),
			InsuranceType:      insuranceType,
			DiscountPercentage: rr.decimalField("discount_percentage"),
			MinCopay:           rr.decimalField("min_copay"),
			MaxCopay:           rr.decimalField("max_copay"),
			CoverageStatus:     domain.CoverageStatus(rr.field("coverage_status")),
			EffectiveDate:      rr.dateField("effective_date"),
			ExpirationDate:     rr.dateField("expiration_date"),
			Tier:               rr.intField("tier"),
		}
		if rr.err != nil {
			return nil, rr.err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func readPolicies(path string) ([]domain.Policy, error) {
	reader, rr, file, err := openTable(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	policies := make([]domain.Policy, 0, len(rows))
	for _, row := range rows {
		rr.setRow(row)

		var insuranceTypes []domain.InsuranceType
		for _, raw := range rr.listField("insurance_types") {
			it, err := domain.ParseInsuranceType(raw)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", rr.rowNum, err)
			}
			insuranceTypes = append(insuranceTypes, it)
		}

		policy := domain.Policy{
			ID:                    rr.field("id"),
			Name:                  rr.field("name"),
			Description:           rr.field("description"),
			EffectiveDate:         rr.dateField("effective_date"),
			ExpirationDate:        rr.dateField("expiration_date"),
			RequiredDocumentation: rr.listField("required_documentation"),
			ApplicableDrugs:       rr.listField("applicable_drugs"),
			InsuranceTypes:        insuranceTypes,
			OverrideConditions:    rr.listField("override_conditions"),
		}
		if rr.err != nil {
			return nil, rr.err
		}
		policies = append(policies, policy)
	}
	return policies, nil
}
