package store

import (
	"github.com/shopspring/decimal"

	"github.com/rxassist/rxassist/internal/domain"
)

// Summary holds headline statistics for the loaded dataset.
type Summary struct {
	TotalMedications   int
	Categories         []domain.Category
	AverageBasePrice   decimal.Decimal
	TotalPolicies      int
	InsuranceTypes     []domain.InsuranceType
	TherapeuticClasses []string
}

// Summary computes headline statistics over the loaded tables. Distinct
// values are reported in first-appearance table order.
func (s *Store) Summary() (*Summary, error) {
	if !s.loaded {
		return nil, ErrNotLoaded
	}

	summary := &Summary{
		TotalMedications: len(s.medications),
		TotalPolicies:    len(s.policies),
	}

	total := decimal.Zero
	seenCategory := make(map[domain.Category]bool)
	seenClass := make(map[string]bool)
	for _, m := range s.medications {
		total = total.Add(m.BasePrice)
		if !seenCategory[m.Category] {
			seenCategory[m.Category] = true
			summary.Categories = append(summary.Categories, m.Category)
		}
		if !seenClass[m.TherapeuticClass] {
			seenClass[m.TherapeuticClass] = true
			summary.TherapeuticClasses = append(summary.TherapeuticClasses, m.TherapeuticClass)
		}
	}
	if len(s.medications) > 0 {
		summary.AverageBasePrice = total.Div(decimal.NewFromInt(int64(len(s.medications)))).Round(2)
	}

	seenInsurance := make(map[domain.InsuranceType]bool)
	for _, r := range s.priceRules {
		if !seenInsurance[r.InsuranceType] {
			seenInsurance[r.InsuranceType] = true
			summary.InsuranceTypes = append(summary.InsuranceTypes, r.InsuranceType)
		}
	}

	return summary, nil
}

// CategoryPriceStats describes base price statistics for one category.
type CategoryPriceStats struct {
	Category  domain.Category
	Count     int
	MinPrice  decimal.Decimal
	MaxPrice  decimal.Decimal
	MeanPrice decimal.Decimal
}

// CategoryPrices aggregates base prices per category in first-appearance
// order. Feeds the price distribution chart and the model context digest.
func (s *Store) CategoryPrices() ([]CategoryPriceStats, error) {
	if !s.loaded {
		return nil, ErrNotLoaded
	}

	var stats []CategoryPriceStats
	index := make(map[domain.Category]int)
	for _, m := range s.medications {
		i, ok := index[m.Category]
		if !ok {
			index[m.Category] = len(stats)
			stats = append(stats, CategoryPriceStats{
				Category: m.Category,
				MinPrice: m.BasePrice,
				MaxPrice: m.BasePrice,
			})
			i = len(stats) - 1
		}
		cs := &stats[i]
		cs.Count++
		if m.BasePrice.LessThan(cs.MinPrice) {
			cs.MinPrice = m.BasePrice
		}
		if m.BasePrice.GreaterThan(cs.MaxPrice) {
			cs.MaxPrice = m.BasePrice
		}
		cs.MeanPrice = cs.MeanPrice.Add(m.BasePrice)
	}
	for i := range stats {
		stats[i].MeanPrice = stats[i].MeanPrice.Div(decimal.NewFromInt(int64(stats[i].Count))).Round(2)
	}
	return stats, nil
}

// CountItem is a generic labeled count used by the pie-style charts.
type CountItem struct {
	Label string
	Count int
}

// CoverageStatusCounts tallies price rules by coverage status in
// first-appearance order.
func (s *Store) CoverageStatusCounts() ([]CountItem, error) {
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	return countBy(len(s.priceRules), func(i int) string {
		return string(s.priceRules[i].CoverageStatus)
	}), nil
}

// TherapeuticClassCounts tallies medications by therapeutic class in
// first-appearance order.
func (s *Store) TherapeuticClassCounts() ([]CountItem, error) {
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	return countBy(len(s.medications), func(i int) string {
		return s.medications[i].TherapeuticClass
	}), nil
}

func countBy(n int, label func(int) string) []CountItem {
	var items []CountItem
	index := make(map[string]int)
	for i := 0; i < n; i++ {
		l := label(i)
		j, ok := index[l]
		if !ok {
			index[l] = len(items)
			items = append(items, CountItem{Label: l})
			j = len(items) - 1
		}
		items[j].Count++
	}
	return items
}

// CrossTabRow is one group of a two-way count: a primary label with counts
// broken down by a secondary label.
type CrossTabRow struct {
	Label  string
	Counts []CountItem
}

// InsuranceCoverageCrossTab counts price rules by insurance type and
// coverage status, both in first-appearance order.
func (s *Store) InsuranceCoverageCrossTab() ([]CrossTabRow, error) {
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	return crossTab(len(s.priceRules),
		func(i int) string { return string(s.priceRules[i].InsuranceType) },
		func(i int) string { return string(s.priceRules[i].CoverageStatus) },
	), nil
}

// PriorAuthByCategory counts medications by category and prior-auth
// requirement.
func (s *Store) PriorAuthByCategory() ([]CrossTabRow, error) {
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	return crossTab(len(s.medications),
		func(i int) string { return string(s.medications[i].Category) },
		func(i int) string {
			if s.medications[i].RequiresPriorAuth {
				return "Prior Auth"
			}
			return "No Prior Auth"
		},
	), nil
}

func crossTab(n int, primary, secondary func(int) string) []CrossTabRow {
	var rows []CrossTabRow
	rowIndex := make(map[string]int)
	cellIndex := make(map[string]map[string]int)
	for i := 0; i < n; i++ {
		p, sec := primary(i), secondary(i)
		ri, ok := rowIndex[p]
		if !ok {
			rowIndex[p] = len(rows)
			rows = append(rows, CrossTabRow{Label: p})
			cellIndex[p] = make(map[string]int)
			ri = len(rows) - 1
		}
		ci, ok := cellIndex[p][sec]
		if !ok {
			cellIndex[p][sec] = len(rows[ri].Counts)
			rows[ri].Counts = append(rows[ri].Counts, CountItem{Label: sec})
			ci = len(rows[ri].Counts) - 1
		}
		rows[ri].Counts[ci].Count++
	}
	return rows
}
