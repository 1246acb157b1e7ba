// Package output renders dataset summaries and chart-ready aggregations as
// console text for the CLI.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rxassist/rxassist/internal/domain"
	"github.com/rxassist/rxassist/internal/store"
)

// FormatCurrency renders a decimal as a dollar amount with two decimals.
func FormatCurrency(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// WriteSummary writes the headline dataset statistics.
func WriteSummary(w io.Writer, summary *store.Summary) {
	fmt.Fprintln(w, "PHARMACY DATASET SUMMARY")
	fmt.Fprintln(w, strings.Repeat("=", 40))
	fmt.Fprintf(w, "Total Medications:  %d\n", summary.TotalMedications)
	fmt.Fprintf(w, "Total Policies:     %d\n", summary.TotalPolicies)
	fmt.Fprintf(w, "Average Base Price: %s\n", FormatCurrency(summary.AverageBasePrice))
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Categories:")
	for _, c := range summary.Categories {
		fmt.Fprintf(w, "  - %s\n", c)
	}
	fmt.Fprintln(w, "Insurance Types:")
	for _, it := range summary.InsuranceTypes {
		fmt.Fprintf(w, "  - %s\n", it)
	}
	fmt.Fprintln(w, "Therapeutic Classes:")
	for _, tc := range summary.TherapeuticClasses {
		fmt.Fprintf(w, "  - %s\n", tc)
	}
}

// WriteMedicationPrices writes the base price of every medication in table
// order.
func WriteMedicationPrices(w io.Writer, medications []domain.Medication) {
	fmt.Fprintln(w, "BASE PRICE BY MEDICATION")
	fmt.Fprintln(w, strings.Repeat("=", 40))
	for _, med := range medications {
		fmt.Fprintf(w, "%-16s %-11s %10s\n",
			med.Name, med.Category, FormatCurrency(med.BasePrice))
	}
}

// WriteCategoryPrices writes the per-category price statistics table.
func WriteCategoryPrices(w io.Writer, stats []store.CategoryPriceStats) {
	fmt.Fprintln(w, "PRICE RANGES BY CATEGORY")
	fmt.Fprintln(w, strings.Repeat("=", 40))
	for _, cs := range stats {
		fmt.Fprintf(w, "%-12s %2d medications  %s to %s (mean %s)\n",
			cs.Category, cs.Count,
			FormatCurrency(cs.MinPrice), FormatCurrency(cs.MaxPrice),
			FormatCurrency(cs.MeanPrice))
	}
}

// WriteCounts writes a titled labeled-count list.
func WriteCounts(w io.Writer, title string, items []store.CountItem) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", 40))
	for _, item := range items {
		fmt.Fprintf(w, "%-30s %d\n", item.Label, item.Count)
	}
}

// WriteCrossTab writes a titled two-way count table.
func WriteCrossTab(w io.Writer, title string, rows []store.CrossTabRow) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", 40))
	for _, row := range rows {
		fmt.Fprintf(w, "%s\n", row.Label)
		for _, c := range row.Counts {
			fmt.Fprintf(w, "  %-30s %d\n", c.Label, c.Count)
		}
	}
}
