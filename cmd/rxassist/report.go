package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rxassist/rxassist/internal/output"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the chart-ready aggregation tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := loadStore()
		if err != nil {
			return err
		}

		categoryPrices, err := st.CategoryPrices()
		if err != nil {
			return err
		}
		coverage, err := st.CoverageStatusCounts()
		if err != nil {
			return err
		}
		classes, err := st.TherapeuticClassCounts()
		if err != nil {
			return err
		}
		insurance, err := st.InsuranceCoverageCrossTab()
		if err != nil {
			return err
		}
		priorAuth, err := st.PriorAuthByCategory()
		if err != nil {
			return err
		}

		output.WriteMedicationPrices(os.Stdout, st.Medications())
		fmt.Println()
		output.WriteCategoryPrices(os.Stdout, categoryPrices)
		fmt.Println()
		output.WriteCounts(os.Stdout, "COVERAGE STATUS DISTRIBUTION", coverage)
		fmt.Println()
		output.WriteCounts(os.Stdout, "THERAPEUTIC CLASS DISTRIBUTION", classes)
		fmt.Println()
		output.WriteCrossTab(os.Stdout, "COVERAGE STATUS BY INSURANCE TYPE", insurance)
		fmt.Println()
		output.WriteCrossTab(os.Stdout, "PRIOR AUTHORIZATION BY CATEGORY", priorAuth)
		return nil
	},
}
