package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rxassist/rxassist/internal/query"
	"github.com/rxassist/rxassist/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.propagateSize()
		return m, nil

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Fatal {
			m.fatalErr = msg.Err
		}
		return m, nil

	case DataLoadedMsg:
		m.loading = false
		m.store = msg.Store
		m.engine = query.NewEngine(msg.Store, m.client, m.timeout)
		m.homeModel.SetSummary(msg.Summary)
		m.analyticsModel.SetData(msg.Analytics)
		m.explorerModel.SetData(msg.Store.Medications(), msg.Store.PriceRules(), msg.Store.Policies())
		m.propagateSize()
		return m, nil

	case tuimsg.AskQuestionMsg:
		if m.engine == nil {
			return m, nil
		}
		return m, askCmd(m.engine, m.suggester, msg.Question)

	case tuimsg.AnswerMsg:
		m.chatModel.RecordAnswer(msg)
		return m, nil
	}

	return m.updateCurrentScene(msg)
}

// handleKeyPress processes keyboard input. While the chat input has focus
// only control-key shortcuts apply globally, so typing is never hijacked.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// A failed dataset load blocks everything except quitting.
	if m.fatalErr != nil {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		return m, nil
	}

	if msg.String() == "esc" && m.currentScene != SceneHome {
		return m, navigate(SceneHome)
	}

	if m.currentScene != SceneChat {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "?":
			return m, navigate(SceneHelp)
		case "h":
			return m, navigate(SceneHome)
		case "c":
			return m, navigate(SceneChat)
		case "a":
			return m, navigate(SceneAnalytics)
		case "e":
			return m, navigate(SceneExplorer)
		}
	}

	return m.updateCurrentScene(msg)
}

func navigate(scene Scene) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Scene: scene}
	}
}

// updateCurrentScene delegates messages to the active scene's model.
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneHome:
		m.homeModel, cmd = m.homeModel.Update(msg)
	case SceneChat:
		m.chatModel, cmd = m.chatModel.Update(msg)
	case SceneAnalytics:
		m.analyticsModel, cmd = m.analyticsModel.Update(msg)
	case SceneExplorer:
		m.explorerModel, cmd = m.explorerModel.Update(msg)
	}
	return m, cmd
}

func (m *Model) propagateSize() {
	contentHeight := m.height - 4
	m.homeModel.SetSize(m.width, contentHeight)
	m.chatModel.SetSize(m.width, contentHeight)
	m.analyticsModel.SetSize(m.width, contentHeight)
	m.explorerModel.SetSize(m.width, contentHeight)
}
