package output

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rxassist/rxassist/internal/domain"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$15.99", FormatCurrency(decimal.RequireFromString("15.99")))
	assert.Equal(t, "$5.00", FormatCurrency(decimal.RequireFromString("5")))
}

func TestWriteMedicationPrices(t *testing.T) {
	medications := []domain.Medication{
		{ID: "MED001", Name: "Lisinopril", Category: domain.CategoryGeneric,
			BasePrice: decimal.RequireFromString("15.99")},
		{ID: "MED007", Name: "Humira", Category: domain.CategorySpecialty,
			BasePrice: decimal.RequireFromString("5250.99")},
	}

	var b strings.Builder
	WriteMedicationPrices(&b, medications)
	out := b.String()

	assert.Contains(t, out, "BASE PRICE BY MEDICATION")
	assert.Contains(t, out, "Lisinopril")
	assert.Contains(t, out, "$15.99")
	assert.Contains(t, out, "Humira")
	assert.Contains(t, out, "$5250.99")

	// One line per medication, in table order.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 4)
	assert.Less(t, strings.Index(out, "Lisinopril"), strings.Index(out, "Humira"))
}
