// Package store loads the pharmacy dataset from flat CSV files and exposes
// read-only lookups and aggregations over it. The dataset is loaded once at
// startup and never mutated afterwards.
package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rxassist/rxassist/internal/domain"
	"github.com/rxassist/rxassist/internal/logger"
)

// ErrNotLoaded is returned by every query operation when Load has not
// succeeded. Callers must refuse further interaction until a reload works.
var ErrNotLoaded = errors.New("dataset not loaded")

const (
	medicationsFile = "medications.csv"
	priceRulesFile  = "price_rules.csv"
	policiesFile    = "policies.csv"
)

// Store holds the three dataset tables in memory, in file order.
type Store struct {
	dir string

	medications []domain.Medication
	priceRules  []domain.PriceRule
	policies    []domain.Policy

	loaded bool
}

// NewStore creates a store backed by CSV files under dir. Nothing is read
// until Load is called.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// NewFromTables builds an already-loaded store directly from in-memory
// tables, bypassing the CSV files.
func NewFromTables(medications []domain.Medication, priceRules []domain.PriceRule, policies []domain.Policy) *Store {
	return &Store{
		medications: medications,
		priceRules:  priceRules,
		policies:    policies,
		loaded:      true,
	}
}

// Dir returns the backing data directory.
func (s *Store) Dir() string {
	return s.dir
}

// Load seeds any missing data files and reads all three tables. On failure
// the store remains (or reverts to) unloaded and the error is returned.
func (s *Store) Load() error {
	s.loaded = false

	if err := EnsureSampleData(s.dir); err != nil {
		return fmt.Errorf("seed sample data: %w", err)
	}

	medications, err := readMedications(filepath.Join(s.dir, medicationsFile))
	if err != nil {
		return fmt.Errorf("load %s: %w", medicationsFile, err)
	}
	priceRules, err := readPriceRules(filepath.Join(s.dir, priceRulesFile))
	if err != nil {
		return fmt.Errorf("load %s: %w", priceRulesFile, err)
	}
	policies, err := readPolicies(filepath.Join(s.dir, policiesFile))
	if err != nil {
		return fmt.Errorf("load %s: %w", policiesFile, err)
	}

	s.medications = medications
	s.priceRules = priceRules
	s.policies = policies
	s.loaded = true

	logger.L().Infow("dataset loaded",
		"dir", s.dir,
		"medications", len(medications),
		"price_rules", len(priceRules),
		"policies", len(policies),
	)
	return nil
}

// Loaded reports whether the last Load succeeded.
func (s *Store) Loaded() bool {
	return s.loaded
}

// Medications returns all medications in table order.
func (s *Store) Medications() []domain.Medication {
	return s.medications
}

// PriceRules returns all price rules in table order.
func (s *Store) PriceRules() []domain.PriceRule {
	return s.priceRules
}

// Policies returns all policies in table order.
func (s *Store) Policies() []domain.Policy {
	return s.policies
}

// MedicationByName finds the first medication whose name matches
// case-insensitively, in table order.
func (s *Store) MedicationByName(name string) (*domain.Medication, bool) {
	for i := range s.medications {
		if strings.EqualFold(s.medications[i].Name, name) {
			return &s.medications[i], true
		}
	}
	return nil, false
}

// MedicationByID finds a medication by its unique ID.
func (s *Store) MedicationByID(id string) (*domain.Medication, bool) {
	for i := range s.medications {
		if s.medications[i].ID == id {
			return &s.medications[i], true
		}
	}
	return nil, false
}

// RulesForMedication returns all price rules referencing a medication ID,
// in table order.
func (s *Store) RulesForMedication(medicationID string) []domain.PriceRule {
	var rules []domain.PriceRule
	for _, r := range s.priceRules {
		if r.MedicationID == medicationID {
			rules = append(rules, r)
		}
	}
	return rules
}

// RulesForInsurance returns all price rules for an insurance type, matched
// case-insensitively, in table order.
func (s *Store) RulesForInsurance(insuranceType string) []domain.PriceRule {
	var rules []domain.PriceRule
	for _, r := range s.priceRules {
		if strings.EqualFold(string(r.InsuranceType), insuranceType) {
			rules = append(rules, r)
		}
	}
	return rules
}

// PoliciesForDrug returns all policies whose applicable drug list contains
// the medication ID, in table order.
func (s *Store) PoliciesForDrug(medicationID string) []domain.Policy {
	var matched []domain.Policy
	for _, p := range s.policies {
		if p.AppliesTo(medicationID) {
			matched = append(matched, p)
		}
	}
	return matched
}
