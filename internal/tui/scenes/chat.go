package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rxassist/rxassist/internal/tui/tuimsg"
	"github.com/rxassist/rxassist/internal/tui/tuistyles"
)

// SampleQuestions are shown as starting points in the chat scene; ctrl+s
// cycles them into the input box.
var SampleQuestions = []string{
	"What is the most expensive medication?",
	"How many medications require prior authorization?",
	"What is the average price of generic medications?",
	"Which insurance type has the best coverage?",
	"Tell me about specialty medications",
	"What medications have generic alternatives?",
}

// ChatEntry is one answered question in the session history.
type ChatEntry struct {
	Question string
	Answer   string
	Related  []string
}

// ChatModel implements the Q&A chat scene.
type ChatModel struct {
	input       textinput.Model
	history     []ChatEntry
	waiting     bool
	showRelated bool
	sampleIndex int
	width       int
	height      int
}

// NewChatModel creates the chat scene with the input focused.
func NewChatModel() *ChatModel {
	input := textinput.New()
	input.Placeholder = "Ask about prices, coverage, generics, or authorizations..."
	input.CharLimit = 200
	input.Width = 70
	input.Focus()

	return &ChatModel{
		input:       input,
		showRelated: true,
	}
}

// SetSize updates the scene dimensions.
func (m *ChatModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Waiting reports whether a question is in flight.
func (m *ChatModel) Waiting() bool {
	return m.waiting
}

// RecordAnswer appends an answered question to the history.
func (m *ChatModel) RecordAnswer(msg tuimsg.AnswerMsg) {
	m.waiting = false
	entry := ChatEntry{Question: msg.Question, Answer: msg.Answer}
	if m.showRelated {
		entry.Related = msg.Related
	}
	m.history = append(m.history, entry)
}

// Update handles messages for the chat scene.
func (m *ChatModel) Update(msg tea.Msg) (*ChatModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("enter"))):
		question := strings.TrimSpace(m.input.Value())
		if question == "" || m.waiting {
			return m, nil
		}
		m.input.SetValue("")
		m.waiting = true
		return m, func() tea.Msg {
			return tuimsg.AskQuestionMsg{Question: question}
		}

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("ctrl+s"))):
		m.input.SetValue(SampleQuestions[m.sampleIndex])
		m.input.CursorEnd()
		m.sampleIndex = (m.sampleIndex + 1) % len(SampleQuestions)
		return m, nil

	case key.Matches(keyMsg, key.NewBinding(key.WithKeys("ctrl+r"))):
		m.showRelated = !m.showRelated
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the chat scene: recent history, the input box, and hints.
func (m *ChatModel) View() string {
	var b strings.Builder

	if len(m.history) == 0 && !m.waiting {
		b.WriteString(tuistyles.InfoStyle.Render("No questions yet. Try one of the samples (ctrl+s) or type your own."))
		b.WriteString("\n\n")
	}

	// Show the most recent exchanges, newest last.
	start := 0
	if len(m.history) > 3 {
		start = len(m.history) - 3
	}
	for _, entry := range m.history[start:] {
		b.WriteString(tuistyles.QuestionStyle.Render("Q: " + entry.Question))
		b.WriteString("\n")
		b.WriteString(entry.Answer)
		if !strings.HasSuffix(entry.Answer, "\n") {
			b.WriteString("\n")
		}
		if len(entry.Related) > 0 {
			b.WriteString(tuistyles.SubtitleStyle.Render("Related:"))
			b.WriteString("\n")
			for _, rq := range entry.Related {
				b.WriteString(tuistyles.InfoStyle.Render("  • " + rq))
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	if m.waiting {
		b.WriteString(tuistyles.InfoStyle.Render("Analyzing..."))
		b.WriteString("\n\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")

	related := "off"
	if m.showRelated {
		related = "on"
	}
	hints := tuistyles.SubtitleStyle.Render(
		"enter ask • ctrl+s sample question • ctrl+r related questions: " + related)
	b.WriteString(hints)

	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}
