package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rxassist/rxassist/internal/tui/tuistyles"
)

// Bar is one labeled value in a horizontal bar chart.
type Bar struct {
	Label string
	Value float64
	Text  string // printed after the bar; defaults to the raw value
}

// BarChart renders labeled values as horizontal bars, scaled to the widest
// value. Suited to the small category/status counts this dashboard shows.
type BarChart struct {
	Title      string
	Bars       []Bar
	Width      int
	LabelWidth int
}

// NewBarChart creates a bar chart with sensible terminal defaults.
func NewBarChart(title string) *BarChart {
	return &BarChart{
		Title:      title,
		Width:      40,
		LabelWidth: 28,
	}
}

// Add appends a bar.
func (c *BarChart) Add(label string, value float64, text string) *BarChart {
	c.Bars = append(c.Bars, Bar{Label: label, Value: value, Text: text})
	return c
}

// WithWidth sets the maximum bar width in cells.
func (c *BarChart) WithWidth(width int) *BarChart {
	c.Width = width
	return c
}

// Render returns the styled chart.
func (c *BarChart) Render() string {
	if len(c.Bars) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var b strings.Builder
	if c.Title != "" {
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(c.Title))
		b.WriteString("\n\n")
	}

	maxValue := 0.0
	for _, bar := range c.Bars {
		if bar.Value > maxValue {
			maxValue = bar.Value
		}
	}

	labelStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Width(c.LabelWidth)
	for i, bar := range c.Bars {
		length := 0
		if maxValue > 0 {
			length = int(bar.Value / maxValue * float64(c.Width))
		}
		if length == 0 && bar.Value > 0 {
			length = 1
		}

		text := bar.Text
		if text == "" {
			text = fmt.Sprintf("%.0f", bar.Value)
		}

		barStyle := lipgloss.NewStyle().Foreground(tuistyles.BarColor(i))
		b.WriteString(labelStyle.Render(bar.Label))
		b.WriteString(" ")
		b.WriteString(barStyle.Render(strings.Repeat("█", length)))
		b.WriteString(" ")
		b.WriteString(tuistyles.MetricValueStyle.Render(text))
		b.WriteString("\n")
	}

	return b.String()
}
