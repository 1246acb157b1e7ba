// Package tuistyles centralizes colors and lipgloss styles for the
// dashboard, so scenes and components share one palette without import
// cycles.
package tuistyles

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	ColorPrimary    = lipgloss.Color("39")  // blue
	ColorSecondary  = lipgloss.Color("141") // purple
	ColorAccent     = lipgloss.Color("215") // orange
	ColorSuccess    = lipgloss.Color("42")  // green
	ColorDanger     = lipgloss.Color("196") // red
	ColorForeground = lipgloss.Color("252")
	ColorMuted      = lipgloss.Color("241")
	ColorBorder     = lipgloss.Color("238")

	ColorBar1 = lipgloss.Color("39")
	ColorBar2 = lipgloss.Color("141")
	ColorBar3 = lipgloss.Color("215")
	ColorBar4 = lipgloss.Color("42")
)

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	SelectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent)

	UnselectedItemStyle = lipgloss.NewStyle().
				Foreground(ColorForeground)

	MetricLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	MetricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorForeground)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorDanger)

	InfoStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	QuestionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)

	TableCellStyle = lipgloss.NewStyle().
			Foreground(ColorForeground)
)

// BarColor cycles through the chart palette.
func BarColor(index int) lipgloss.Color {
	colors := []lipgloss.Color{ColorBar1, ColorBar2, ColorBar3, ColorBar4}
	return colors[index%len(colors)]
}
