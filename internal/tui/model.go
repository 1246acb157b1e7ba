package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rxassist/rxassist/internal/llm"
	"github.com/rxassist/rxassist/internal/query"
	"github.com/rxassist/rxassist/internal/store"
	"github.com/rxassist/rxassist/internal/tui/scenes"
	"github.com/rxassist/rxassist/internal/tui/tuimsg"
)

// Model is the top-level application state for the dashboard.
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Data and query dependencies. store stays nil until a DataLoadedMsg
	// arrives; the load command owns its store until then.
	dataDir   string
	store     *store.Store
	client    llm.ChatClient
	timeout   time.Duration
	engine    *query.Engine
	suggester *query.Suggester

	// Scene models
	homeModel      *scenes.HomeModel
	chatModel      *scenes.ChatModel
	analyticsModel *scenes.AnalyticsModel
	explorerModel  *scenes.ExplorerModel

	// Error state; fatalErr blocks all interaction (dataset unavailable)
	err      error
	fatalErr error

	// Loading state
	loading        bool
	loadingMessage string
}

// NewModel creates the application model. Init loads the dataset from
// dataDir; the store and query engine are wired in once loading succeeds.
func NewModel(dataDir string, client llm.ChatClient, timeout time.Duration, suggester *query.Suggester) Model {
	return Model{
		currentScene:   SceneHome,
		dataDir:        dataDir,
		client:         client,
		timeout:        timeout,
		suggester:      suggester,
		homeModel:      scenes.NewHomeModel(),
		chatModel:      scenes.NewChatModel(),
		analyticsModel: scenes.NewAnalyticsModel(),
		explorerModel:  scenes.NewExplorerModel(),
		loading:        true,
		loadingMessage: "Loading pharmacy dataset...",
		width:          80,
		height:         24,
	}
}

// Init kicks off the dataset load (required by tea.Model).
func (m Model) Init() tea.Cmd {
	return loadDataCmd(m.dataDir)
}

// loadDataCmd loads a fresh store off the event loop and hands it back in
// the message, so the model never reads a store another goroutine is still
// writing.
func loadDataCmd(dataDir string) tea.Cmd {
	return func() tea.Msg {
		st := store.NewStore(dataDir)
		if err := st.Load(); err != nil {
			return ErrorMsg{Err: err, Fatal: true}
		}

		summary, err := st.Summary()
		if err != nil {
			return ErrorMsg{Err: err, Fatal: true}
		}

		analytics := &scenes.AnalyticsData{Medications: st.Medications()}
		if analytics.CategoryPrices, err = st.CategoryPrices(); err != nil {
			return ErrorMsg{Err: err, Fatal: true}
		}
		if analytics.CoverageStatus, err = st.CoverageStatusCounts(); err != nil {
			return ErrorMsg{Err: err, Fatal: true}
		}
		if analytics.TherapeuticClass, err = st.TherapeuticClassCounts(); err != nil {
			return ErrorMsg{Err: err, Fatal: true}
		}
		if analytics.InsuranceCoverage, err = st.InsuranceCoverageCrossTab(); err != nil {
			return ErrorMsg{Err: err, Fatal: true}
		}
		if analytics.PriorAuth, err = st.PriorAuthByCategory(); err != nil {
			return ErrorMsg{Err: err, Fatal: true}
		}

		return DataLoadedMsg{Store: st, Summary: summary, Analytics: analytics}
	}
}

// askCmd routes a question through the query engine off the UI loop.
func askCmd(engine *query.Engine, suggester *query.Suggester, question string) tea.Cmd {
	return func() tea.Msg {
		answer := engine.Response(context.Background(), question)

		var related []string
		if suggester != nil {
			related = suggester.Suggest(question)
		}

		return tuimsg.AnswerMsg{
			Question: question,
			Answer:   answer,
			Related:  related,
		}
	}
}
