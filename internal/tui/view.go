package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rxassist/rxassist/internal/tui/tuistyles"
)

// View renders the current state of the application.
func (m Model) View() string {
	if m.loading {
		return m.renderApp(m.renderLoading())
	}

	if m.fatalErr != nil {
		return m.renderApp(m.renderFatalError())
	}

	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.homeModel.View()
	case SceneChat:
		content = m.chatModel.View()
	case SceneAnalytics:
		content = m.analyticsModel.View()
	case SceneExplorer:
		content = m.explorerModel.View()
	case SceneHelp:
		content = m.renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with the title bar and status bar.
func (m Model) renderApp(content string) string {
	titleBar := m.renderTitleBar()
	statusBar := m.renderStatusBar()

	contentHeight := m.height - 4
	contentContainer := lipgloss.NewStyle().
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		contentContainer,
		statusBar,
	)
}

func (m Model) renderTitleBar() string {
	title := tuistyles.TitleStyle.Render("Pharmacy Data Assistant")
	breadcrumb := tuistyles.SubtitleStyle.Render(m.currentScene.String())
	return lipgloss.JoinVertical(lipgloss.Left, title, breadcrumb)
}

func (m Model) renderStatusBar() string {
	shortcuts := []string{
		formatShortcut("h", "home"),
		formatShortcut("c", "chat"),
		formatShortcut("a", "analytics"),
		formatShortcut("e", "explorer"),
		formatShortcut("?", "help"),
		formatShortcut("q", "quit"),
	}

	statusText := strings.Join(shortcuts, " • ")

	// store is only assigned on the event loop, after a successful load.
	if m.store != nil {
		note := tuistyles.SubtitleStyle.Render("dataset loaded")
		width := m.width - lipgloss.Width(statusText) - lipgloss.Width(note) - 2
		if width > 0 {
			statusText += strings.Repeat(" ", width) + note
		}
	}

	return tuistyles.StatusBarStyle.Width(m.width).Render(statusText)
}

func formatShortcut(key, desc string) string {
	return tuistyles.StatusKeyStyle.Render(key) + " " + desc
}

func (m Model) renderLoading() string {
	message := m.loadingMessage
	if message == "" {
		message = "Loading..."
	}
	return tuistyles.BorderStyle.Render(message)
}

// renderFatalError covers the screen when the dataset could not be loaded;
// no query scene is reachable until a restart.
func (m Model) renderFatalError() string {
	return tuistyles.BorderStyle.Render(
		tuistyles.ErrorStyle.Render("Dataset unavailable") + "\n\n" +
			fmt.Sprintf("%v\n\n", m.fatalErr) +
			tuistyles.InfoStyle.Render("Fix the data files and restart. Press q to quit."),
	)
}

func (m Model) renderHelp() string {
	helpText := `Pharmacy Data Assistant

KEYBOARD SHORTCUTS:
  h        Home dashboard
  c        Q&A chat
  a        Analytics charts
  e        Data explorer
  ?        This help
  ESC      Back to home
  q/Ctrl+C Quit

CHAT:
  Type a question and press enter.
  ctrl+s   Cycle sample questions into the input
  ctrl+r   Toggle related-question suggestions

ANALYTICS / EXPLORER:
  tab, arrow keys to switch views and scroll`

	return tuistyles.BorderStyle.Render(helpText)
}
