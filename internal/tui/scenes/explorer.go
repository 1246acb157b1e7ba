package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rxassist/rxassist/internal/domain"
	"github.com/rxassist/rxassist/internal/tui/tuistyles"
)

var explorerTabs = []string{"Medications", "Price Rules", "Policies"}

// ExplorerModel renders the raw dataset tables with simple scrolling.
type ExplorerModel struct {
	medications []domain.Medication
	priceRules  []domain.PriceRule
	policies    []domain.Policy

	activeTab int
	offset    int
	width     int
	height    int
}

// NewExplorerModel creates the data explorer scene model.
func NewExplorerModel() *ExplorerModel {
	return &ExplorerModel{}
}

// SetData supplies the loaded tables.
func (m *ExplorerModel) SetData(medications []domain.Medication, rules []domain.PriceRule, policies []domain.Policy) {
	m.medications = medications
	m.priceRules = rules
	m.policies = policies
}

// SetSize updates the scene dimensions.
func (m *ExplorerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles tab switching and scrolling.
func (m *ExplorerModel) Update(msg tea.Msg) (*ExplorerModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("tab", "right"))):
		m.activeTab = (m.activeTab + 1) % len(explorerTabs)
		m.offset = 0
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("shift+tab", "left"))):
		m.activeTab = (m.activeTab + len(explorerTabs) - 1) % len(explorerTabs)
		m.offset = 0
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("down", "j"))):
		if m.offset < m.rowCount()-1 {
			m.offset++
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("up", "k"))):
		if m.offset > 0 {
			m.offset--
		}
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("g"))):
		m.offset = 0
	}
	return m, nil
}

func (m *ExplorerModel) rowCount() int {
	switch m.activeTab {
	case 0:
		return len(m.medications)
	case 1:
		return len(m.priceRules)
	default:
		return len(m.policies)
	}
}

// visibleRows is how many table rows fit under the header chrome.
func (m *ExplorerModel) visibleRows() int {
	rows := m.height - 8
	if rows < 5 {
		rows = 5
	}
	return rows
}

// View renders the active table.
func (m *ExplorerModel) View() string {
	var b strings.Builder
	b.WriteString(m.renderTabBar())
	b.WriteString("\n\n")

	switch m.activeTab {
	case 0:
		b.WriteString(m.renderMedications())
	case 1:
		b.WriteString(m.renderPriceRules())
	case 2:
		b.WriteString(m.renderPolicies())
	}

	b.WriteString("\n")
	b.WriteString(tuistyles.SubtitleStyle.Render("tab switch table • ↑/↓ scroll • g top"))
	return b.String()
}

func (m *ExplorerModel) renderTabBar() string {
	var tabs []string
	for i, name := range explorerTabs {
		if i == m.activeTab {
			tabs = append(tabs, tuistyles.SelectedItemStyle.Render(name))
		} else {
			tabs = append(tabs, tuistyles.UnselectedItemStyle.Render(name))
		}
	}
	return strings.Join(tabs, "  │  ")
}

func (m *ExplorerModel) renderMedications() string {
	var b strings.Builder
	b.WriteString(tuistyles.TableHeaderStyle.Render(
		fmt.Sprintf("%-8s %-14s %-11s %10s  %-22s %-5s", "ID", "Name", "Category", "Base Price", "Therapeutic Class", "PA")))
	b.WriteString("\n")

	end := min(m.offset+m.visibleRows(), len(m.medications))
	for _, med := range m.medications[m.offset:end] {
		pa := "no"
		if med.RequiresPriorAuth {
			pa = "yes"
		}
		b.WriteString(tuistyles.TableCellStyle.Render(
			fmt.Sprintf("%-8s %-14s %-11s %10s  %-22s %-5s",
				med.ID, med.Name, med.Category, "$"+med.BasePrice.StringFixed(2), med.TherapeuticClass, pa)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *ExplorerModel) renderPriceRules() string {
	var b strings.Builder
	b.WriteString(tuistyles.TableHeaderStyle.Render(
		fmt.Sprintf("%-8s %-11s %9s %10s %10s  %-28s %4s", "Med", "Insurance", "Discount", "Min Copay", "Max Copay", "Status", "Tier")))
	b.WriteString("\n")

	end := min(m.offset+m.visibleRows(), len(m.priceRules))
	for _, rule := range m.priceRules[m.offset:end] {
		b.WriteString(tuistyles.TableCellStyle.Render(
			fmt.Sprintf("%-8s %-11s %8s%% %10s %10s  %-28s %4d",
				rule.MedicationID, rule.InsuranceType, rule.DiscountPercentage.StringFixed(1),
				"$"+rule.MinCopay.StringFixed(2), "$"+rule.MaxCopay.StringFixed(2),
				rule.CoverageStatus, rule.Tier)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *ExplorerModel) renderPolicies() string {
	var b strings.Builder

	end := min(m.offset+m.visibleRows()/3, len(m.policies))
	if end <= m.offset {
		end = min(m.offset+1, len(m.policies))
	}
	for _, policy := range m.policies[m.offset:end] {
		b.WriteString(tuistyles.TableHeaderStyle.Render(policy.ID + "  " + policy.Name))
		b.WriteString("\n")
		b.WriteString(tuistyles.TableCellStyle.Render("  " + policy.Description))
		b.WriteString("\n")
		b.WriteString(tuistyles.SubtitleStyle.Render(
			fmt.Sprintf("  drugs: %s • docs: %d • overrides: %d",
				strings.Join(policy.ApplicableDrugs, ", "),
				len(policy.RequiredDocumentation), len(policy.OverrideConditions))))
		b.WriteString("\n\n")
	}
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
