package scenes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rxassist/rxassist/internal/store"
	"github.com/rxassist/rxassist/internal/tui/components"
	"github.com/rxassist/rxassist/internal/tui/tuistyles"
)

// HomeModel shows headline dataset statistics and navigation hints.
type HomeModel struct {
	summary *store.Summary
	width   int
	height  int
}

// NewHomeModel creates the home scene model.
func NewHomeModel() *HomeModel {
	return &HomeModel{}
}

// SetSummary supplies the dataset summary once the store has loaded.
func (m *HomeModel) SetSummary(summary *store.Summary) {
	m.summary = summary
}

// SetSize updates the scene dimensions.
func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages; the home scene is passive.
func (m *HomeModel) Update(msg tea.Msg) (*HomeModel, tea.Cmd) {
	return m, nil
}

// View renders the home dashboard.
func (m *HomeModel) View() string {
	if m.summary == nil {
		return tuistyles.InfoStyle.Render("Loading dataset...")
	}

	var b strings.Builder
	cards := components.MetricRow(
		components.NewMetricCard("Medications", fmt.Sprintf("%d", m.summary.TotalMedications)).
			WithDescription(fmt.Sprintf("%d categories", len(m.summary.Categories))),
		components.NewMetricCard("Policies", fmt.Sprintf("%d", m.summary.TotalPolicies)),
		components.NewMetricCard("Avg Base Price", "$"+m.summary.AverageBasePrice.StringFixed(2)).
			WithDescription(fmt.Sprintf("%d therapeutic classes", len(m.summary.TherapeuticClasses))),
	)
	b.WriteString(cards)
	b.WriteString("\n\n")

	b.WriteString(tuistyles.SubtitleStyle.Render("Insurance types on file:"))
	b.WriteString("\n")
	for _, it := range m.summary.InsuranceTypes {
		b.WriteString("  • " + string(it) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(tuistyles.InfoStyle.Render("Press c to ask questions, a for analytics, e to browse the data."))
	return b.String()
}
