package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rxassist/rxassist/internal/domain"
	"github.com/rxassist/rxassist/internal/store"
	"github.com/rxassist/rxassist/internal/tui/components"
	"github.com/rxassist/rxassist/internal/tui/tuistyles"
)

// AnalyticsData bundles every chart aggregation the analytics scene shows.
type AnalyticsData struct {
	Medications       []domain.Medication
	CategoryPrices    []store.CategoryPriceStats
	CoverageStatus    []store.CountItem
	TherapeuticClass  []store.CountItem
	InsuranceCoverage []store.CrossTabRow
	PriorAuth         []store.CrossTabRow
}

var analyticsTabs = []string{
	"Medication Prices",
	"Price Ranges",
	"Coverage Status",
	"Therapeutic Classes",
	"Coverage by Insurance",
	"Prior Auth by Category",
}

// AnalyticsModel renders the chart dashboard, one tab per aggregation.
type AnalyticsModel struct {
	data      *AnalyticsData
	activeTab int
	width     int
	height    int
}

// NewAnalyticsModel creates the analytics scene model.
func NewAnalyticsModel() *AnalyticsModel {
	return &AnalyticsModel{}
}

// SetData supplies the precomputed aggregations.
func (m *AnalyticsModel) SetData(data *AnalyticsData) {
	m.data = data
}

// SetSize updates the scene dimensions.
func (m *AnalyticsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles tab navigation.
func (m *AnalyticsModel) Update(msg tea.Msg) (*AnalyticsModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("left", "shift+tab"))):
		m.activeTab = (m.activeTab + len(analyticsTabs) - 1) % len(analyticsTabs)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("right", "tab"))):
		m.activeTab = (m.activeTab + 1) % len(analyticsTabs)
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"))):
		m.activeTab = int(keyMsg.String()[0] - '1')
	}
	return m, nil
}

// View renders the active chart tab.
func (m *AnalyticsModel) View() string {
	if m.data == nil {
		return tuistyles.InfoStyle.Render("Loading dataset...")
	}

	var b strings.Builder
	b.WriteString(m.renderTabBar())
	b.WriteString("\n\n")

	switch m.activeTab {
	case 0:
		b.WriteString(m.renderMedicationPrices())
	case 1:
		b.WriteString(m.renderCategoryPrices())
	case 2:
		b.WriteString(renderCounts("Coverage Status Distribution", m.data.CoverageStatus))
	case 3:
		b.WriteString(renderCounts("Distribution by Therapeutic Class", m.data.TherapeuticClass))
	case 4:
		b.WriteString(renderCrossTab("Coverage Status by Insurance Type", m.data.InsuranceCoverage))
	case 5:
		b.WriteString(renderCrossTab("Prior Authorization by Category", m.data.PriorAuth))
	}

	b.WriteString("\n")
	b.WriteString(tuistyles.SubtitleStyle.Render("tab/←/→ switch chart • 1-6 jump"))
	return b.String()
}

func (m *AnalyticsModel) renderTabBar() string {
	var tabs []string
	for i, name := range analyticsTabs {
		label := fmt.Sprintf("%d %s", i+1, name)
		if i == m.activeTab {
			tabs = append(tabs, tuistyles.SelectedItemStyle.Render(label))
		} else {
			tabs = append(tabs, tuistyles.UnselectedItemStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(tabs, "  │  "))
}

func (m *AnalyticsModel) renderMedicationPrices() string {
	chart := components.NewBarChart("Base Price by Medication")
	for _, med := range m.data.Medications {
		price, _ := med.BasePrice.Float64()
		chart.Add(med.Name, price, "$"+med.BasePrice.StringFixed(2))
	}
	return chart.Render()
}

func (m *AnalyticsModel) renderCategoryPrices() string {
	chart := components.NewBarChart("Medication Price Ranges by Category")
	for _, cs := range m.data.CategoryPrices {
		maxPrice, _ := cs.MaxPrice.Float64()
		text := fmt.Sprintf("$%s – $%s (%d meds)",
			cs.MinPrice.StringFixed(2), cs.MaxPrice.StringFixed(2), cs.Count)
		chart.Add(string(cs.Category), maxPrice, text)
	}
	return chart.Render()
}

func renderCounts(title string, items []store.CountItem) string {
	chart := components.NewBarChart(title)
	for _, item := range items {
		chart.Add(item.Label, float64(item.Count), fmt.Sprintf("%d", item.Count))
	}
	return chart.Render()
}

func renderCrossTab(title string, rows []store.CrossTabRow) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(title))
	b.WriteString("\n\n")
	for _, row := range rows {
		chart := components.NewBarChart(row.Label).WithWidth(30)
		for _, c := range row.Counts {
			chart.Add(c.Label, float64(c.Count), fmt.Sprintf("%d", c.Count))
		}
		b.WriteString(chart.Render())
		b.WriteString("\n")
	}
	return b.String()
}
